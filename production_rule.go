package lsystem

import (
	"fmt"
	"slices"
	"strings"
)

// Rule maps one symbol to its replacement sequence. Produce is called once
// per symbol per generation and must not keep or modify the returned slice
// after handing it over.
type Rule[T any] interface {
	Produce(symbol T) ([]T, error)
}

// RuleFunc adapts an ordinary function to a Rule.
type RuleFunc[T any] func(symbol T) ([]T, error)

func (f RuleFunc[T]) Produce(symbol T) ([]T, error) {
	return f(symbol)
}

// Total adapts a rule that handles every symbol of its alphabet, typically a
// switch over an enumerated symbol type with a default case.
func Total[T any](f func(symbol T) []T) RuleFunc[T] {
	return func(symbol T) ([]T, error) {
		return f(symbol), nil
	}
}

// ProductionRule is a single context-free production Predecessor -> Successor.
type ProductionRule[T comparable] struct {
	Predecessor T
	Successor   []T
}

func NewProductionRule[T comparable](predecessor T, successor ...T) ProductionRule[T] {
	return ProductionRule[T]{
		Predecessor: predecessor,
		Successor:   successor,
	}
}

func (r ProductionRule[T]) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprint(r.Predecessor))
	sb.WriteString(" ->")
	for _, t := range r.Successor {
		sb.WriteRune(' ')
		sb.WriteString(fmt.Sprint(t))
	}
	return sb.String()
}

// Table is a Rule backed by a set of productions keyed by predecessor.
// Symbols without a production are rewritten to themselves when they are
// declared constants or the table has an identity fallback; any other
// symbol is reported as an *UnhandledSymbolError.
type Table[T comparable] struct {
	rules     map[T][]T
	variables Set[T]
	constants Set[T]
	identity  bool
}

type TableOption[T comparable] func(*Table[T])

// WithConstants declares symbols that rewrite to themselves.
func WithConstants[T comparable](constants ...T) TableOption[T] {
	return func(t *Table[T]) {
		for _, c := range constants {
			t.constants.Add(c)
		}
	}
}

// WithIdentityFallback makes every symbol without a production a constant.
func WithIdentityFallback[T comparable]() TableOption[T] {
	return func(t *Table[T]) {
		t.identity = true
	}
}

// NewTable builds a rule table. When two productions share a predecessor the
// later one wins.
func NewTable[T comparable](productions []ProductionRule[T], opts ...TableOption[T]) *Table[T] {
	t := &Table[T]{
		rules:     make(map[T][]T, len(productions)),
		variables: make(Set[T], len(productions)),
		constants: make(Set[T]),
	}
	for _, p := range productions {
		t.rules[p.Predecessor] = slices.Clone(p.Successor)
		t.variables.Add(p.Predecessor)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table[T]) Produce(symbol T) ([]T, error) {
	if successor, ok := t.rules[symbol]; ok {
		return slices.Clone(successor), nil
	}
	if t.identity || t.constants.Contains(symbol) {
		return []T{symbol}, nil
	}
	return nil, &UnhandledSymbolError{Symbol: symbol}
}

// Variables returns the predecessors that have a production.
func (t *Table[T]) Variables() Set[T] {
	return NewSet(t.variables.AsSlice()...)
}

// Constants returns the declared constants.
func (t *Table[T]) Constants() Set[T] {
	return NewSet(t.constants.AsSlice()...)
}

func (t *Table[T]) IsVariable(symbol T) bool {
	return t.variables.Contains(symbol)
}

func (t *Table[T]) IsConstant(symbol T) bool {
	if t.variables.Contains(symbol) {
		return false
	}
	return t.identity || t.constants.Contains(symbol)
}

// Productions returns the table's productions in no particular order.
func (t *Table[T]) Productions() []ProductionRule[T] {
	out := make([]ProductionRule[T], 0, len(t.rules))
	for p, s := range t.rules {
		out = append(out, NewProductionRule(p, slices.Clone(s)...))
	}
	return out
}

// unhandled is the rule substituted for a nil rule.
type unhandled[T any] struct{}

func (unhandled[T]) Produce(symbol T) ([]T, error) {
	return nil, &UnhandledSymbolError{Symbol: symbol}
}
