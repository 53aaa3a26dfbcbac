package grammars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lsystem "github.com/viktordanov/lgen"
	"github.com/viktordanov/lgen/turtle"
)

func TestAlgae(t *testing.T) {
	gens, err := NewAlgae().Take(8)
	require.NoError(t, err)

	want := []string{"B", "A", "AB", "ABA", "ABAAB", "ABAABABA", "ABAABABAABAAB", "ABAABABAABAABABAABABA"}
	for i, g := range gens {
		assert.Equal(t, want[i], strings.Join(symbolStrings(g), ""), "n = %d", i)
	}
	assert.Equal(t, []Algae{AlgaeA, AlgaeB, AlgaeA, AlgaeA, AlgaeB}, gens[4])
}

func TestAlgaeRuleRejectsUnknownSymbol(t *testing.T) {
	_, err := AlgaeRule(Algae(9))
	assert.ErrorIs(t, err, lsystem.ErrUnhandledSymbol)
}

func TestAnabaena(t *testing.T) {
	d, err := Lookup("anabaena")
	require.NoError(t, err)

	gens, err := d.Generations(5)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-->",
		"<-- ->",
		"<- --> -->",
		"<-- <-- -> <-- ->",
		"<- --> <- --> --> <- --> -->",
	}, gens)
}

func TestParametric(t *testing.T) {
	gens, err := NewParametric().Take(5)
	require.NoError(t, err)

	want := [][]Module{
		{B(2), A(4, 4)},
		{B(1), B(4), A(1, 0)},
		{B(0), B(3), A(2, 1)},
		{C(), B(2), A(4, 3)},
		{C(), B(1), A(8, 7)},
	}
	assert.Equal(t, want, gens)
	assert.Equal(t, "C B(1) A(8,7)", strings.Join(symbolStrings(gens[4]), " "))
}

func TestKochGenerations(t *testing.T) {
	g := NewKoch()

	gen1, err := g.Generation(1)
	require.NoError(t, err)
	assert.Equal(t, Letters("F+F-F-F+F"), gen1)

	gen3, err := g.Generation(3)
	require.NoError(t, err)
	forward := 0
	for _, l := range gen3 {
		if l == 'F' {
			forward++
		}
	}
	assert.Equal(t, 125, forward)
	assert.Len(t, gen3, 125+4*(1+5+25))
}

func TestSierpinskiAndSeaweed(t *testing.T) {
	gen2, err := NewSierpinski().Generation(2)
	require.NoError(t, err)
	assert.Equal(t, Letters("A+B+A-B-A-B-A+B+A"), gen2)

	gen1, err := NewSeaweed().Generation(1)
	require.NoError(t, err)
	assert.Equal(t, Letters("FF-[-F+F+F]+[+F-F-F]"), gen1)
}

func TestPenrose(t *testing.T) {
	g := NewPenrose()
	gen1, err := g.Generation(1)
	require.NoError(t, err)
	assert.Equal(t, Letters(strings.Repeat("[+OF--PF[---MF--NF]+]++", 4)+"[+OF--PF[---MF--NF]+]"), gen1)

	gen2, err := g.Generation(2)
	require.NoError(t, err)
	assert.Equal(t, 20, strings.Count(string(gen1), "F"))
	assert.Equal(t, 20, strings.Count(string(gen2), "Q"))
}

func TestCommands(t *testing.T) {
	d, err := Lookup("koch")
	require.NoError(t, err)
	assert.True(t, d.Drawable())

	cmds, err := d.Commands(1)
	require.NoError(t, err)
	assert.Equal(t, []turtle.Command{
		turtle.Fd(10), turtle.Lt(90), turtle.Fd(10), turtle.Rt(90), turtle.Fd(10),
		turtle.Rt(90), turtle.Fd(10), turtle.Lt(90), turtle.Fd(10),
	}, cmds)

	seaweed, err := Lookup("seaweed")
	require.NoError(t, err)
	cmds, err = seaweed.Commands(1)
	require.NoError(t, err)
	assert.Equal(t, turtle.Command{Op: turtle.Push}, cmds[3])
	assert.Equal(t, turtle.Command{Op: turtle.Pop}, cmds[10])
	assert.Equal(t, 90.0, seaweed.Script().Heading)

	algae, err := Lookup("algae")
	require.NoError(t, err)
	assert.False(t, algae.Drawable())
	_, err = algae.Commands(2)
	assert.ErrorIs(t, err, ErrNotDrawable)
}

func TestCursor(t *testing.T) {
	d, err := Lookup("algae")
	require.NoError(t, err)

	c := d.Cursor()
	assert.Equal(t, -1, c.Generation())
	for i, want := range []string{"B", "A", "AB", "ABA"} {
		gen, text, err := c.Advance()
		require.NoError(t, err)
		assert.Equal(t, i, gen)
		assert.Equal(t, want, text)
	}

	other := d.Cursor()
	_, text, err := other.Advance()
	require.NoError(t, err)
	assert.Equal(t, "B", text)
}

func TestProfile(t *testing.T) {
	d, err := Lookup("sierpinski")
	require.NoError(t, err)

	p, err := d.Profile(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 17, 53}, p.Lengths)
	assert.Equal(t, "sierpinski", p.Name)
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"algae", "anabaena", "koch", "parametric", "penrose", "seaweed", "sierpinski"}, Names())

	for _, name := range Names() {
		d, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, d.Name())
		assert.NotEmpty(t, d.Description())

		gens, err := d.Generations(4)
		require.NoError(t, err, name)
		assert.Len(t, gens, 4)
	}

	_, err := Lookup("dragon")
	assert.ErrorIs(t, err, ErrUnknownDemo)
}

func TestGrammarDisplay(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"algae", "axiom: B\nA -> A B\nB -> A"},
		{"koch", "axiom: F\nF -> F + F - F - F + F"},
		{"sierpinski", "axiom: A\nA -> B - A - B\nB -> A + B + A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Grammar())
		})
	}

	d, err := Lookup("anabaena")
	require.NoError(t, err)
	lines := strings.Split(d.Grammar(), "\n")
	assert.Equal(t, "axiom: -->", lines[0])
	assert.ElementsMatch(t, []string{"--> -> <-- ->", "<-- -> <- -->", "-> -> -->", "<- -> <--"}, lines[1:])

	p, err := Lookup("parametric")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p.Grammar(), "axiom: B(2)A(4,4)\n"))
	assert.Contains(t, p.Grammar(), "B(x) : x < 1 -> C")
}

func TestCursorLength(t *testing.T) {
	d, err := Lookup("anabaena")
	require.NoError(t, err)

	c := d.Cursor()
	for _, want := range []int{1, 2, 3, 5} {
		_, _, err := c.Advance()
		require.NoError(t, err)
		assert.Equal(t, want, c.Length())
	}
}
