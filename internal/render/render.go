// Package render drives the external tools that turn turtle commands into
// images: a Python turtle script is written and run to produce PostScript,
// ImageMagick converts it to PNG, and PNG frames are stitched into a GIF.
package render

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/viktordanov/lgen/internal/config"
	"github.com/viktordanov/lgen/turtle"
)

// Runner executes an external command in dir.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// ExecRunner runs the command with os/exec and reports its stderr on
// failure.
func ExecRunner(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w, stderr: %s", name, err, stderr.String())
	}
	return nil
}

type Pipeline struct {
	cfg    config.RenderConfig
	log    *slog.Logger
	run    Runner
	prefix string
	dir    string
}

// New creates a pipeline working in a fresh directory under cfg.WorkDir. A
// nil runner means ExecRunner.
func New(cfg config.RenderConfig, logger *slog.Logger, run Runner) (*Pipeline, error) {
	if run == nil {
		run = ExecRunner
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New().String()
	dir, err := filepath.Abs(filepath.Join(cfg.WorkDir, "lsystem-"+id))
	if err != nil {
		return nil, fmt.Errorf("resolving work directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating work directory: %w", err)
	}
	return &Pipeline{
		cfg:    cfg,
		log:    logger.With("run", id),
		run:    run,
		prefix: "frame",
		dir:    dir,
	}, nil
}

// Dir is the pipeline's work directory.
func (p *Pipeline) Dir() string {
	return p.dir
}

// Frame renders cmds to frame-<index>.png and returns the PNG path.
func (p *Pipeline) Frame(ctx context.Context, cmds []turtle.Command, opts turtle.ScriptOptions, index int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout.Duration)
	defer cancel()

	base := p.prefix + "-" + strconv.Itoa(index)
	script := filepath.Join(p.dir, base+".py")
	eps := filepath.Join(p.dir, base+".eps")
	png := filepath.Join(p.dir, base+".png")

	opts.PostScript = eps
	f, err := os.Create(script)
	if err != nil {
		return "", fmt.Errorf("creating script: %w", err)
	}
	if err := turtle.WriteScript(f, cmds, opts); err != nil {
		f.Close()
		return "", fmt.Errorf("writing script: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing script: %w", err)
	}

	p.log.Debug("running turtle script", "frame", index, "commands", len(cmds))
	if err := p.run(ctx, p.dir, p.cfg.Python, script); err != nil {
		return "", err
	}

	p.log.Debug("converting postscript", "frame", index)
	if err := p.run(ctx, p.dir, p.cfg.Convert, eps,
		"-resize", p.cfg.Resize, "-background", p.cfg.Background, png); err != nil {
		return "", err
	}

	if !p.cfg.Keep {
		p.remove(script, eps)
	}
	p.log.Info("rendered frame", "frame", index, "png", png)
	return png, nil
}

// Animate stitches frames, in order, into a looping GIF at out. A relative
// out is resolved against the current directory, not the work directory.
func (p *Pipeline) Animate(ctx context.Context, frames []string, out string) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to animate")
	}
	out, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout.Duration)
	defer cancel()

	args := []string{"-delay", strconv.Itoa(p.cfg.Delay), "-loop", "0", "-dispose", "3"}
	args = append(args, frames...)
	args = append(args, out)
	if err := p.run(ctx, p.dir, p.cfg.Convert, args...); err != nil {
		return err
	}

	if !p.cfg.Keep {
		p.remove(frames...)
	}
	p.log.Info("wrote animation", "frames", len(frames), "out", out)
	return nil
}

// Close removes the work directory unless the configuration keeps it.
func (p *Pipeline) Close() error {
	if p.cfg.Keep {
		return nil
	}
	return os.RemoveAll(p.dir)
}

func (p *Pipeline) remove(paths ...string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.log.Warn("removing intermediate file", "path", path, "error", err)
		}
	}
}
