// Package grammars collects classic L-systems: algae growth, Anabaena
// filament polarity, a parametric system and several turtle-drawn fractals.
package grammars

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	lsystem "github.com/viktordanov/lgen"
	"github.com/viktordanov/lgen/analysis"
	"github.com/viktordanov/lgen/turtle"
)

var (
	ErrUnknownDemo = errors.New("grammars: unknown demo")
	ErrNotDrawable = errors.New("grammars: demo has no turtle interpretation")
)

// Demo is a named grammar with its own presentation, independent of its
// symbol type.
type Demo interface {
	Name() string
	Description() string
	// Grammar displays the axiom followed by one production per line.
	Grammar() string
	// Generations renders generations 0 through n-1 as text.
	Generations(n int) ([]string, error)
	// Commands interprets generation gen as turtle commands.
	Commands(gen int) ([]turtle.Command, error)
	Drawable() bool
	Script() turtle.ScriptOptions
	Cursor() *Cursor
	Profile(generations int) (*analysis.Profile, error)
}

// Cursor steps through the generations of a demo as text.
type Cursor struct {
	next   func() ([]string, error)
	gen    int
	length int
	sep    string
}

// Advance returns the index and text of the next generation.
func (c *Cursor) Advance() (int, string, error) {
	parts, err := c.next()
	if err != nil {
		return c.gen, "", err
	}
	c.gen++
	c.length = len(parts)
	return c.gen, strings.Join(parts, c.sep), nil
}

// Length is the number of symbols in the last generation returned.
func (c *Cursor) Length() int {
	return c.length
}

// Generation is the index of the last generation returned, -1 before the
// first Advance.
func (c *Cursor) Generation() int {
	return c.gen
}

type demo[T comparable] struct {
	name        string
	description string
	grammar     *lsystem.Grammar[T]
	sep         string
	rules       []string
	draw        turtle.Mapping[T]
	script      turtle.ScriptOptions
}

func (d *demo[T]) Name() string        { return d.name }
func (d *demo[T]) Description() string { return d.description }
func (d *demo[T]) Drawable() bool      { return d.draw != nil }

func (d *demo[T]) Script() turtle.ScriptOptions {
	return d.script
}

func (d *demo[T]) format(seq []T) string {
	return strings.Join(symbolStrings(seq), d.sep)
}

// Grammar lists table productions; demos whose rule is a function supply
// their own listing in rules.
func (d *demo[T]) Grammar() string {
	var sb strings.Builder
	sb.WriteString("axiom: ")
	sb.WriteString(d.format(d.grammar.Axiom()))

	rules := d.rules
	if table, ok := d.grammar.Rule().(*lsystem.Table[T]); ok {
		rules = rules[:0:0]
		for _, p := range table.Productions() {
			rules = append(rules, p.String())
		}
		sort.Strings(rules)
	}
	for _, r := range rules {
		sb.WriteByte('\n')
		sb.WriteString(r)
	}
	return sb.String()
}

func (d *demo[T]) Generations(n int) ([]string, error) {
	gens, err := d.grammar.Take(n)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(gens))
	for i, g := range gens {
		out[i] = d.format(g)
	}
	return out, nil
}

func (d *demo[T]) Commands(gen int) ([]turtle.Command, error) {
	if d.draw == nil {
		return nil, fmt.Errorf("%s: %w", d.name, ErrNotDrawable)
	}
	seq, err := d.grammar.Generation(gen)
	if err != nil {
		return nil, err
	}
	return turtle.Interpret(seq, d.draw), nil
}

func (d *demo[T]) Cursor() *Cursor {
	p := d.grammar.Start()
	return &Cursor{
		next: func() ([]string, error) {
			seq, err := p.Advance()
			if err != nil {
				return nil, err
			}
			return symbolStrings(seq), nil
		},
		gen: -1,
		sep: d.sep,
	}
}

func (d *demo[T]) Profile(generations int) (*analysis.Profile, error) {
	return analysis.Analyse(d.name, d.grammar, generations)
}

func symbolStrings[T any](seq []T) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = fmt.Sprint(s)
	}
	return out
}

var registry = map[string]func() Demo{}

func register(name string, build func() Demo) {
	registry[name] = build
}

// Lookup returns a fresh demo by name.
func Lookup(name string) (Demo, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDemo, name)
	}
	return build(), nil
}

// Names lists the registered demos in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
