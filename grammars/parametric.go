package grammars

import (
	"strconv"

	lsystem "github.com/viktordanov/lgen"
)

type ModuleKind uint8

const (
	ModuleA ModuleKind = iota
	ModuleB
	ModuleC
)

// Module is a letter with up to two real parameters. A uses X and Y, B uses
// X and C uses neither.
type Module struct {
	Kind ModuleKind
	X, Y float64
}

func A(x, y float64) Module { return Module{Kind: ModuleA, X: x, Y: y} }
func B(x float64) Module    { return Module{Kind: ModuleB, X: x} }
func C() Module             { return Module{Kind: ModuleC} }

func (m Module) String() string {
	switch m.Kind {
	case ModuleA:
		return "A(" + formatParam(m.X) + "," + formatParam(m.Y) + ")"
	case ModuleB:
		return "B(" + formatParam(m.X) + ")"
	case ModuleC:
		return "C"
	default:
		return "?"
	}
}

func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParametricRule is the parametric OL-system of The Algorithmic Beauty of
// Plants, example 1.7:
//
//	A(x,y) : y <= 3 -> A(x*2, x+y)
//	A(x,y) : y > 3  -> B(x) A(x/y, 0)
//	B(x)   : x < 1  -> C
//	B(x)   : x >= 1 -> B(x-1)
//	C               -> C
func ParametricRule(m Module) ([]Module, error) {
	switch m.Kind {
	case ModuleA:
		if m.Y <= 3 {
			return []Module{A(m.X*2, m.X+m.Y)}, nil
		}
		return []Module{B(m.X), A(m.X/m.Y, 0)}, nil
	case ModuleB:
		if m.X < 1 {
			return []Module{C()}, nil
		}
		return []Module{B(m.X - 1)}, nil
	case ModuleC:
		return []Module{C()}, nil
	default:
		return nil, &lsystem.UnhandledSymbolError{Symbol: m}
	}
}

func NewParametric() *lsystem.Grammar[Module] {
	return lsystem.New[Module]([]Module{B(2), A(4, 4)}, lsystem.RuleFunc[Module](ParametricRule))
}

func init() {
	register("parametric", func() Demo {
		return &demo[Module]{
			name:        "parametric",
			description: "Parametric OL-system, ABOP example 1.7, axiom B(2) A(4,4)",
			grammar:     NewParametric(),
			rules: []string{
				"A(x,y) : y <= 3 -> A(x*2, x+y)",
				"A(x,y) : y > 3 -> B(x) A(x/y, 0)",
				"B(x) : x < 1 -> C",
				"B(x) : x >= 1 -> B(x-1)",
				"C -> C",
			},
		}
	})
}
