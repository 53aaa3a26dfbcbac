// Package lsystem implements a generic, context-free Lindenmayer system
// engine. A Grammar pairs an axiom with a production Rule; a Producer pulls
// successive generations from it, rewriting every symbol of the current
// generation in parallel.
package lsystem

import (
	"iter"
	"slices"
)

// Grammar is an immutable axiom and rule pair.
type Grammar[T any] struct {
	axiom []T
	rule  Rule[T]
}

// New returns a grammar over a copy of axiom. A nil rule handles no symbol,
// so advancing past generation 0 of a non-empty axiom reports
// ErrUnhandledSymbol.
func New[T any](axiom []T, rule Rule[T]) *Grammar[T] {
	if rule == nil {
		rule = unhandled[T]{}
	}
	return &Grammar[T]{
		axiom: slices.Clone(axiom),
		rule:  rule,
	}
}

func (g *Grammar[T]) Axiom() []T {
	return slices.Clone(g.axiom)
}

func (g *Grammar[T]) Rule() Rule[T] {
	return g.rule
}

// Start returns a new producer positioned before generation 0.
func (g *Grammar[T]) Start() *Producer[T] {
	pool := newBufferPool[T](len(g.axiom) * 2)
	pool.load(g.axiom)
	return &Producer[T]{
		rule:       g.rule,
		pool:       pool,
		generation: -1,
	}
}

// Take returns generations 0 through n-1.
func (g *Grammar[T]) Take(n int) ([][]T, error) {
	if n < 0 {
		return nil, ErrNegativeGeneration
	}
	p := g.Start()
	out := make([][]T, 0, n)
	for range n {
		seq, err := p.Advance()
		if err != nil {
			return out, err
		}
		out = append(out, seq)
	}
	return out, nil
}

// Generation returns generation n, where generation 0 is the axiom.
func (g *Grammar[T]) Generation(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeGeneration
	}
	p := g.Start()
	var (
		seq []T
		err error
	)
	for range n + 1 {
		if seq, err = p.Advance(); err != nil {
			return nil, err
		}
	}
	return seq, nil
}

type producerState uint8

const (
	atZeroth producerState = iota
	advancing
	failed
)

// Producer is a forward-only cursor over the generations of a grammar. It is
// never exhausted. A Producer must not be advanced from multiple goroutines
// at once; producers started from the same grammar share no state.
type Producer[T any] struct {
	rule       Rule[T]
	pool       *bufferPool[T]
	state      producerState
	generation int
	err        error
}

// Advance returns the next generation. The first call returns the axiom;
// every later call rewrites the previous generation. The returned slice
// belongs to the caller. Once Advance fails it keeps returning the same
// error.
func (p *Producer[T]) Advance() ([]T, error) {
	switch p.state {
	case atZeroth:
		p.state = advancing
	case advancing:
		if err := p.rewrite(); err != nil {
			p.state = failed
			p.err = err
			return nil, err
		}
	case failed:
		return nil, p.err
	}
	p.generation++
	return slices.Clone(p.pool.active()), nil
}

// rewrite replaces every symbol of the current generation by its image
// under the rule, in order, reading only the current generation.
func (p *Producer[T]) rewrite() error {
	p.pool.resetWritingHead()
	for i, symbol := range p.pool.active() {
		successor, err := p.rule.Produce(symbol)
		if err != nil {
			return &RewriteError{Generation: p.generation + 1, Position: i, Err: err}
		}
		p.pool.appendSlice(successor)
	}
	p.pool.swap()
	return nil
}

// Generation is the index of the generation last returned by Advance, or -1
// before the first call.
func (p *Producer[T]) Generation() int {
	return p.generation
}

// Err returns the error that stopped the producer, if any.
func (p *Producer[T]) Err() error {
	return p.err
}

// All yields (index, generation) pairs until the caller stops ranging or
// the rule fails; in the latter case Err reports why.
func (p *Producer[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for {
			seq, err := p.Advance()
			if err != nil {
				return
			}
			if !yield(p.generation, seq) {
				return
			}
		}
	}
}
