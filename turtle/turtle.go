// Package turtle turns symbol sequences into turtle graphics commands and
// writes them out as a Python turtle program.
package turtle

import (
	"fmt"
	"strconv"
)

type Op uint8

const (
	Noop Op = iota
	Forward
	Left
	Right
	Push
	Pop
)

func (o Op) String() string {
	switch o {
	case Noop:
		return "noop"
	case Forward:
		return "forward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Push:
		return "push"
	case Pop:
		return "pop"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Command is one turtle instruction. Value is a distance for Forward and an
// angle in degrees for Left and Right.
type Command struct {
	Op    Op
	Value float64
}

func (c Command) String() string {
	switch c.Op {
	case Forward, Left, Right:
		return fmt.Sprintf("%s(%s)", c.Op, formatValue(c.Value))
	default:
		return c.Op.String()
	}
}

func Fd(distance float64) Command { return Command{Op: Forward, Value: distance} }
func Lt(angle float64) Command    { return Command{Op: Left, Value: angle} }
func Rt(angle float64) Command    { return Command{Op: Right, Value: angle} }

// Interpretation is implemented by symbol types that know how to draw
// themselves.
type Interpretation interface {
	Turtle() Command
}

// Mapping assigns a command to a symbol.
type Mapping[T any] func(symbol T) Command

// Interpret maps every symbol of seq, in order. Symbols mapped to Noop are
// kept so that command i always belongs to symbol i.
func Interpret[T any](seq []T, m Mapping[T]) []Command {
	cmds := make([]Command, len(seq))
	for i, s := range seq {
		cmds[i] = m(s)
	}
	return cmds
}

func InterpretSymbols[T Interpretation](seq []T) []Command {
	return Interpret(seq, func(s T) Command { return s.Turtle() })
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
