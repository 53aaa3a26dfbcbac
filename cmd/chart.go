package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lgen/analysis"
	"github.com/viktordanov/lgen/grammars"
)

func newChartCommand(a *app) *cobra.Command {
	var (
		generations int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "chart <demo>",
		Short: "Write an HTML chart of a demo's growth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := grammars.Lookup(args[0])
			if err != nil {
				return err
			}
			p, err := d.Profile(generations)
			if err != nil {
				return err
			}
			if output == "" {
				output = d.Name() + ".html"
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := p.RenderChart(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info("wrote chart", "demo", d.Name(), "average_growth", p.AverageGrowth(), "path", output)
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&generations, "generations", "n", 10, "number of generations to analyse")
	cmd.Flags().StringVarP(&output, "output", "o", "", "chart file (default: <demo>.html)")
	return cmd
}

// newChartMux registers one chart handler per demo at /<demo>.
func newChartMux(a *app, generations int) *http.ServeMux {
	mux := http.NewServeMux()
	for _, name := range grammars.Names() {
		a.log.Debug("registering chart handler", "demo", name)
		mux.Handle("/"+name, analysis.Handler(func() (*analysis.Profile, error) {
			d, err := grammars.Lookup(name)
			if err != nil {
				return nil, err
			}
			return d.Profile(generations)
		}))
	}
	return mux
}

func newServeCommand(a *app) *cobra.Command {
	var (
		addr        string
		generations int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve growth charts of every demo over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Serve.Addr
			}
			if !cmd.Flags().Changed("generations") {
				generations = a.cfg.Serve.Generations
			}

			srv := &http.Server{Addr: addr, Handler: newChartMux(a, generations)}
			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-cmd.Context().Done():
					srv.Close()
				case <-done:
				}
			}()

			a.log.Info("serving charts", "addr", addr, "generations", generations)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8081", "listen address")
	cmd.Flags().IntVarP(&generations, "generations", "n", 10, "number of generations per chart")
	return cmd
}
