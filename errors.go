package lsystem

import (
	"errors"
	"fmt"
)

var (
	// ErrUnhandledSymbol is matched by every *UnhandledSymbolError.
	ErrUnhandledSymbol = errors.New("lsystem: unhandled symbol")

	ErrNegativeGeneration = errors.New("lsystem: negative generation")
)

// UnhandledSymbolError reports a symbol for which a rule has no production.
type UnhandledSymbolError struct {
	Symbol any
}

func (e *UnhandledSymbolError) Error() string {
	return fmt.Sprintf("lsystem: no production for symbol %v", e.Symbol)
}

func (e *UnhandledSymbolError) Unwrap() error {
	return ErrUnhandledSymbol
}

// RewriteError is returned by Producer.Advance when the rule fails while
// producing Generation at the symbol found at Position of the previous one.
type RewriteError struct {
	Generation int
	Position   int
	Err        error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("lsystem: generation %d, position %d: %v", e.Generation, e.Position, e.Err)
}

func (e *RewriteError) Unwrap() error {
	return e.Err
}
