package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lgen/grammars"
	"github.com/viktordanov/lgen/internal/render"
	"github.com/viktordanov/lgen/turtle"
)

func drawableDemo(name string) (grammars.Demo, error) {
	d, err := grammars.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !d.Drawable() {
		return nil, fmt.Errorf("%s: %w", name, grammars.ErrNotDrawable)
	}
	return d, nil
}

func newScriptCommand(a *app) *cobra.Command {
	var (
		generation int
		output     string
		animate    bool
	)

	cmd := &cobra.Command{
		Use:   "script <demo>",
		Short: "Write a Python turtle script drawing one generation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := drawableDemo(args[0])
			if err != nil {
				return err
			}
			cmds, err := d.Commands(generation)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			opts := d.Script()
			if cmd.Flags().Changed("animate") {
				opts.Animate = animate
			}
			if err := turtle.WriteScript(w, cmds, opts); err != nil {
				return err
			}
			a.log.Debug("wrote script", "demo", d.Name(), "generation", generation, "commands", len(cmds))
			return nil
		},
	}

	cmd.Flags().IntVarP(&generation, "generation", "g", 3, "generation to draw")
	cmd.Flags().StringVarP(&output, "output", "o", "", "script file (default: stdout)")
	cmd.Flags().BoolVar(&animate, "animate", false, "draw visibly instead of batching screen updates")
	return cmd
}

func newRenderCommand(a *app) *cobra.Command {
	var (
		from, to int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Render generations to PNG frames and stitch them into a GIF",
		Long: `render draws every generation in [from, to] with Python's turtle module,
converts each canvas to PNG with ImageMagick and stitches the frames into an
animated GIF. python and convert are taken from the [render] config section.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := drawableDemo(args[0])
			if err != nil {
				return err
			}
			if from < 0 || to < from {
				return fmt.Errorf("invalid generation range [%d, %d]", from, to)
			}
			if output == "" {
				output = d.Name() + ".gif"
			}

			p, err := render.New(a.cfg.Render, a.log, a.runner)
			if err != nil {
				return err
			}
			defer p.Close()

			ctx := cmd.Context()
			frames := make([]string, 0, to-from+1)
			for gen := from; gen <= to; gen++ {
				cmds, err := d.Commands(gen)
				if err != nil {
					return err
				}
				png, err := p.Frame(ctx, cmds, d.Script(), gen-from)
				if err != nil {
					return err
				}
				frames = append(frames, png)
			}
			if err := p.Animate(ctx, frames, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "first generation")
	cmd.Flags().IntVar(&to, "to", 5, "last generation")
	cmd.Flags().StringVarP(&output, "out", "o", "", "animation file (default: <demo>.gif)")
	return cmd
}
