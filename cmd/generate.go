package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/viktordanov/lgen/grammars"
)

var indexStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range grammars.Names() {
				d, _ := grammars.Lookup(name)
				drawable := ""
				if d.Drawable() {
					drawable = " (drawable)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s%s\n", name, d.Description(), drawable)
			}
		},
	}
}

func newGenerateCommand(a *app) *cobra.Command {
	var (
		generations int
		styled      bool
		rules       bool
	)

	cmd := &cobra.Command{
		Use:   "generate <demo>",
		Short: "Print the first generations of a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := grammars.Lookup(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("generations") {
				generations = a.cfg.Generate.Generations
			}
			if !cmd.Flags().Changed("styled") {
				styled = a.cfg.Generate.Styled
			}

			a.log.Debug("generating", "demo", d.Name(), "generations", generations)
			gens, err := d.Generations(generations)
			if err != nil {
				return err
			}
			if rules {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", d.Grammar())
			}
			for i, g := range gens {
				label := fmt.Sprintf("n = %d:", i)
				if styled {
					label = indexStyle.Render(label)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", label, g)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&generations, "generations", "n", 8, "number of generations, starting at the axiom")
	cmd.Flags().BoolVar(&styled, "styled", false, "colour the generation labels")
	cmd.Flags().BoolVar(&rules, "rules", false, "print the axiom and productions first")
	return cmd
}
