package grammars

import lsystem "github.com/viktordanov/lgen"

// Algae is Lindenmayer's original alphabet for the growth of algae.
type Algae uint8

const (
	// Reproduction state.
	AlgaeA Algae = iota
	// Growth state.
	AlgaeB
)

func (a Algae) String() string {
	switch a {
	case AlgaeA:
		return "A"
	case AlgaeB:
		return "B"
	default:
		return "?"
	}
}

// AlgaeRule is A -> AB, B -> A.
func AlgaeRule(s Algae) ([]Algae, error) {
	switch s {
	case AlgaeA:
		return []Algae{AlgaeA, AlgaeB}, nil
	case AlgaeB:
		return []Algae{AlgaeA}, nil
	default:
		return nil, &lsystem.UnhandledSymbolError{Symbol: s}
	}
}

// NewAlgae starts from a single cell in the growth state; generation lengths
// follow the Fibonacci numbers.
func NewAlgae() *lsystem.Grammar[Algae] {
	return lsystem.New[Algae]([]Algae{AlgaeB}, lsystem.RuleFunc[Algae](AlgaeRule))
}

func init() {
	register("algae", func() Demo {
		return &demo[Algae]{
			name:        "algae",
			description: "Lindenmayer's algae growth: A -> AB, B -> A",
			grammar:     NewAlgae(),
			rules:       []string{"A -> A B", "B -> A"},
		}
	})
}
