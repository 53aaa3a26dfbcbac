package turtle

import (
	"bufio"
	"fmt"
	"io"
)

// ScriptOptions controls the preamble and epilogue of a generated script.
type ScriptOptions struct {
	// Animate draws at speed 0 instead of batching screen updates.
	Animate bool

	Width, Height int
	X, Y          float64
	Heading       float64
	PenSize       int

	// PostScript, when set, saves the canvas to this file instead of
	// waiting for a click.
	PostScript string
}

func DefaultScriptOptions() ScriptOptions {
	return ScriptOptions{
		Width:   400,
		Height:  300,
		Heading: 90,
		PenSize: 1,
	}
}

// WriteScript writes a Python turtle program drawing cmds. Push and Pop are
// implemented with an explicit stack of (position, heading) pairs.
func WriteScript(w io.Writer, cmds []Command, opts ScriptOptions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "import turtle")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "stack = []")
	fmt.Fprintln(bw)
	if opts.Animate {
		fmt.Fprintln(bw, "turtle.speed(0)")
	} else {
		fmt.Fprintln(bw, "turtle.tracer(10000, 0)")
	}
	fmt.Fprintln(bw, "turtle.hideturtle()")
	if opts.Width > 0 && opts.Height > 0 {
		fmt.Fprintf(bw, "turtle.screensize(%d, %d)\n", opts.Width, opts.Height)
	}
	if opts.PenSize > 0 {
		fmt.Fprintf(bw, "turtle.pensize(%d)\n", opts.PenSize)
	}
	fmt.Fprintln(bw, "turtle.up()")
	fmt.Fprintf(bw, "turtle.setposition(%s, %s)\n", formatValue(opts.X), formatValue(opts.Y))
	fmt.Fprintf(bw, "turtle.setheading(%s)\n", formatValue(opts.Heading))
	fmt.Fprintln(bw, "turtle.down()")
	fmt.Fprintln(bw)

	for _, c := range cmds {
		switch c.Op {
		case Forward:
			fmt.Fprintf(bw, "turtle.forward(%s)\n", formatValue(c.Value))
		case Left:
			fmt.Fprintf(bw, "turtle.left(%s)\n", formatValue(c.Value))
		case Right:
			fmt.Fprintf(bw, "turtle.right(%s)\n", formatValue(c.Value))
		case Push:
			fmt.Fprintln(bw, "stack.append((turtle.pos(), turtle.heading()))")
		case Pop:
			fmt.Fprintln(bw, "position, head = stack.pop()")
			fmt.Fprintln(bw, "turtle.up()")
			fmt.Fprintln(bw, "turtle.setposition(position)")
			fmt.Fprintln(bw, "turtle.setheading(head)")
			fmt.Fprintln(bw, "turtle.down()")
		}
	}

	fmt.Fprintln(bw)
	if !opts.Animate {
		fmt.Fprintln(bw, "turtle.update()")
	}
	if opts.PostScript != "" {
		fmt.Fprintf(bw, "turtle.getcanvas().postscript(file=%q, colormode='color')\n", opts.PostScript)
	} else {
		fmt.Fprintln(bw, "turtle.exitonclick()")
	}
	return bw.Flush()
}
