package grammars

import lsystem "github.com/viktordanov/lgen"

// Anabaena models the cells of an Anabaena catenula filament. A cells are
// long, B cells short; the suffix is the cell polarity.
type Anabaena uint8

const (
	Ar Anabaena = iota
	Al
	Br
	Bl
)

func (a Anabaena) String() string {
	switch a {
	case Ar:
		return "-->"
	case Al:
		return "<--"
	case Br:
		return "->"
	case Bl:
		return "<-"
	default:
		return "?"
	}
}

func NewAnabaena() *lsystem.Grammar[Anabaena] {
	table := lsystem.NewTable([]lsystem.ProductionRule[Anabaena]{
		lsystem.NewProductionRule(Ar, Al, Br),
		lsystem.NewProductionRule(Al, Bl, Ar),
		lsystem.NewProductionRule(Br, Ar),
		lsystem.NewProductionRule(Bl, Al),
	})
	return lsystem.New[Anabaena]([]Anabaena{Ar}, table)
}

func init() {
	register("anabaena", func() Demo {
		return &demo[Anabaena]{
			name:        "anabaena",
			description: "Anabaena catenula filament: Ar -> Al Br, Al -> Bl Ar, Br -> Ar, Bl -> Al",
			grammar:     NewAnabaena(),
			sep:         " ",
		}
	})
}
