package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lgen/internal/config"
	"github.com/viktordanov/lgen/internal/render"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration.
type app struct {
	cfgFile    string
	logLevel   string
	cpuprofile string

	cfg     *config.Config
	log     *slog.Logger
	profile *os.File

	// runner executes the render tools; nil means render.ExecRunner.
	runner render.Runner
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lsystem",
		Short: "Grow and draw Lindenmayer systems",
		Long: `lsystem grows the bundled L-systems generation by generation.

Demos:
  algae       Lindenmayer's algae (A -> AB, B -> A)
  anabaena    Anabaena catenula filament polarity
  parametric  parametric OL-system with real-valued modules
  koch        quadratic Koch curve
  sierpinski  Sierpinski arrowhead curve
  seaweed     bracketed seaweed plant
  penrose     Penrose P3 tiling`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml or .yaml, default: $LSYSTEM_CONFIG or ./lsystem.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.cpuprofile, "cpuprofile", "", "write cpu profile to file")

	root.AddCommand(
		newListCommand(a),
		newGenerateCommand(a),
		newScriptCommand(a),
		newRenderCommand(a),
		newChartCommand(a),
		newServeCommand(a),
		newStepCommand(a),
		newVersionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.General.LogLevel = a.logLevel
	}
	a.log = a.cfg.NewLogger(cmd.ErrOrStderr())

	if a.cpuprofile != "" {
		f, err := os.Create(a.cpuprofile)
		if err != nil {
			return fmt.Errorf("creating cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		a.profile = f
		a.log.Debug("cpu profiling enabled", "path", a.cpuprofile)
	}
	return nil
}

// execute runs root and stops profiling whether or not the subcommand
// succeeded.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if terr := a.teardown(); err == nil {
		err = terr
	}
	return err
}

func (a *app) teardown() error {
	if a.profile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := a.profile.Close()
	a.profile = nil
	return err
}
