package grammars

import (
	lsystem "github.com/viktordanov/lgen"
	"github.com/viktordanov/lgen/turtle"
)

// Letter is a single-character symbol shared by the turtle-drawn grammars.
type Letter rune

func (l Letter) String() string {
	return string(l)
}

// Letters converts a string to a sequence of letters, one per rune.
func Letters(s string) []Letter {
	return []Letter(s)
}

func productions(rules map[Letter]string) []lsystem.ProductionRule[Letter] {
	out := make([]lsystem.ProductionRule[Letter], 0, len(rules))
	for p, s := range rules {
		out = append(out, lsystem.NewProductionRule(p, Letters(s)...))
	}
	return out
}

// NewKoch is the quadratic Koch curve F -> F+F-F-F+F.
func NewKoch() *lsystem.Grammar[Letter] {
	table := lsystem.NewTable(productions(map[Letter]string{
		'F': "F+F-F-F+F",
	}), lsystem.WithConstants[Letter]('+', '-'))
	return lsystem.New[Letter](Letters("F"), table)
}

func KochTurtle(l Letter) turtle.Command {
	switch l {
	case 'F':
		return turtle.Fd(10)
	case '+':
		return turtle.Lt(90)
	case '-':
		return turtle.Rt(90)
	default:
		return turtle.Command{}
	}
}

// NewSierpinski is the Sierpinski arrowhead curve A -> B-A-B, B -> A+B+A.
func NewSierpinski() *lsystem.Grammar[Letter] {
	table := lsystem.NewTable(productions(map[Letter]string{
		'A': "B-A-B",
		'B': "A+B+A",
	}), lsystem.WithConstants[Letter]('+', '-'))
	return lsystem.New[Letter](Letters("A"), table)
}

func SierpinskiTurtle(l Letter) turtle.Command {
	switch l {
	case 'A', 'B':
		return turtle.Fd(10)
	case '+':
		return turtle.Lt(60)
	case '-':
		return turtle.Rt(60)
	default:
		return turtle.Command{}
	}
}

// NewSeaweed is the bracketed plant F -> FF-[-F+F+F]+[+F-F-F].
func NewSeaweed() *lsystem.Grammar[Letter] {
	table := lsystem.NewTable(productions(map[Letter]string{
		'F': "FF-[-F+F+F]+[+F-F-F]",
	}), lsystem.WithConstants[Letter]('+', '-', '[', ']'))
	return lsystem.New[Letter](Letters("F"), table)
}

func SeaweedTurtle(l Letter) turtle.Command {
	switch l {
	case 'F':
		return turtle.Fd(10)
	case '[':
		return turtle.Command{Op: turtle.Push}
	case ']':
		return turtle.Command{Op: turtle.Pop}
	case '+':
		return turtle.Rt(22.5)
	case '-':
		return turtle.Lt(22.5)
	default:
		return turtle.Command{}
	}
}

// NewPenrose is Penrose's P3 tiling. M, N, O and P carry structure only; F
// draws and becomes the inert Q after one generation.
func NewPenrose() *lsystem.Grammar[Letter] {
	table := lsystem.NewTable(productions(map[Letter]string{
		'M': "OF++PF----NF[-OF----MF]++",
		'N': "+OF--PF[---MF--NF]+",
		'O': "-MF++NF[+++OF++PF]-",
		'P': "--OF++++MF[+PF++++NF]--NF",
		'F': "Q",
	}), lsystem.WithIdentityFallback[Letter]())
	return lsystem.New[Letter](Letters("[N]++[N]++[N]++[N]++[N]"), table)
}

func PenroseTurtle(l Letter) turtle.Command {
	switch l {
	case 'F':
		return turtle.Fd(25)
	case '[':
		return turtle.Command{Op: turtle.Push}
	case ']':
		return turtle.Command{Op: turtle.Pop}
	case '+':
		return turtle.Rt(36)
	case '-':
		return turtle.Lt(36)
	default:
		return turtle.Command{}
	}
}

func init() {
	register("koch", func() Demo {
		return &demo[Letter]{
			name:        "koch",
			description: "Quadratic Koch curve: F -> F+F-F-F+F",
			grammar:     NewKoch(),
			draw:        KochTurtle,
			script: turtle.ScriptOptions{
				Animate: true,
				Heading: 0,
			},
		}
	})
	register("sierpinski", func() Demo {
		return &demo[Letter]{
			name:        "sierpinski",
			description: "Sierpinski arrowhead: A -> B-A-B, B -> A+B+A",
			grammar:     NewSierpinski(),
			draw:        SierpinskiTurtle,
			script: turtle.ScriptOptions{
				Animate: true,
				Width:   400,
				Height:  400,
				X:       -320,
				Y:       -260,
			},
		}
	})
	register("seaweed", func() Demo {
		return &demo[Letter]{
			name:        "seaweed",
			description: "Bracketed seaweed: F -> FF-[-F+F+F]+[+F-F-F]",
			grammar:     NewSeaweed(),
			draw:        SeaweedTurtle,
			script: turtle.ScriptOptions{
				Width:   400,
				Height:  300,
				Y:       -150,
				Heading: 90,
			},
		}
	})
	register("penrose", func() Demo {
		return &demo[Letter]{
			name:        "penrose",
			description: "Penrose P3 tiling from [N]++[N]++[N]++[N]++[N]",
			grammar:     NewPenrose(),
			draw:        PenroseTurtle,
			script: turtle.ScriptOptions{
				Width:   400,
				Height:  300,
				Heading: 90,
				PenSize: 2,
			},
		}
	})
}
