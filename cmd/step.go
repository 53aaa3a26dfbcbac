package main

import (
	"github.com/spf13/cobra"

	"github.com/viktordanov/lgen/grammars"
	"github.com/viktordanov/lgen/internal/tui/stepper"
)

func newStepCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "step <demo>",
		Short: "Step through a demo interactively",
		Long: `step opens a terminal view of generation 0 of a demo.

Keys:
  n / space   next generation
  up / down   scroll
  q / ctrl+c  quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := grammars.Lookup(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("starting stepper", "demo", d.Name())
			return stepper.Run(d)
		},
	}
}
