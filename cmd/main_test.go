package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viktordanov/lgen/grammars"
	"github.com/viktordanov/lgen/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeApp(t, &app{}, args...)
}

func executeApp(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LSYSTEM_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	root := a.rootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := a.execute(context.Background(), root)
	return out.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

// fakeTools stands in for python and convert, writing each tool's output
// file relative to the directory it runs in.
type fakeTools struct {
	dirs []string
}

func (f *fakeTools) run(ctx context.Context, dir, name string, args ...string) error {
	f.dirs = append(f.dirs, dir)
	out := args[len(args)-1]
	if strings.HasSuffix(args[0], ".py") {
		out = strings.TrimSuffix(args[0], ".py") + ".eps"
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	return os.WriteFile(out, []byte("img"), 0o644)
}

func TestGenerateAlgae(t *testing.T) {
	out, err := execute(t, "generate", "algae", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, "n = 0: B\nn = 1: A\nn = 2: AB\nn = 3: ABA\nn = 4: ABAAB\n", out)
}

func TestGenerateUsesConfigDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsystem.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\ngenerations = 3\n"), 0o644))

	out, err := execute(t, "--config", path, "generate", "anabaena")
	require.NoError(t, err)
	assert.Equal(t, "n = 0: -->\nn = 1: <-- ->\nn = 2: <- --> -->\n", out)
}

func TestGenerateRules(t *testing.T) {
	out, err := execute(t, "generate", "koch", "-n", "2", "--rules")
	require.NoError(t, err)
	assert.Equal(t, "axiom: F\nF -> F + F - F - F + F\n\nn = 0: F\nn = 1: F+F-F-F+F\n", out)
}

func TestGenerateUnknownDemo(t *testing.T) {
	_, err := execute(t, "generate", "dragon")
	assert.ErrorIs(t, err, grammars.ErrUnknownDemo)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(grammars.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "algae"))
	assert.Contains(t, out, "koch        Quadratic Koch curve: F -> F+F-F-F+F (drawable)")
}

func TestScript(t *testing.T) {
	out, err := execute(t, "script", "koch", "-g", "1")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "turtle.forward(10)\n"))
	assert.Contains(t, out, "turtle.speed(0)")

	file := filepath.Join(t.TempDir(), "seaweed.py")
	_, err = execute(t, "script", "seaweed", "-g", "2", "-o", file)
	require.NoError(t, err)
	script, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(script), "stack.append")

	_, err = execute(t, "script", "algae")
	assert.ErrorIs(t, err, grammars.ErrNotDrawable)
}

func TestRenderRejectsBadRange(t *testing.T) {
	_, err := execute(t, "render", "koch", "--from", "4", "--to", "2")
	assert.ErrorContains(t, err, "invalid generation range")

	_, err = execute(t, "render", "parametric")
	assert.ErrorIs(t, err, grammars.ErrNotDrawable)
}

func TestRenderWritesAnimationToWorkingDirectory(t *testing.T) {
	cwd, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	chdir(t, cwd)
	require.NoError(t, os.WriteFile("render.toml", []byte("[render]\nwork_dir = \"work\"\n"), 0o644))

	tools := &fakeTools{}
	out, err := executeApp(t, &app{runner: tools.run}, "--config", "render.toml", "render", "koch", "--from", "1", "--to", "2")
	require.NoError(t, err)
	assert.Equal(t, "koch.gif\n", out)
	assert.FileExists(t, filepath.Join(cwd, "koch.gif"))

	require.Len(t, tools.dirs, 5)
	assert.True(t, filepath.IsAbs(tools.dirs[0]))
	assert.NoDirExists(t, tools.dirs[0])
}

func TestChart(t *testing.T) {
	file := filepath.Join(t.TempDir(), "algae.html")
	out, err := execute(t, "chart", "algae", "-n", "6", "-o", file)
	require.NoError(t, err)
	assert.Equal(t, file+"\n", out)

	html, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Growth ratio")
}

func TestChartMux(t *testing.T) {
	a := &app{cfg: config.Default(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	srv := httptest.NewServer(newChartMux(a, 5))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/koch")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "koch")

	resp, err = http.Get(srv.URL + "/dragon")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServeFailsOnBusyAddress(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	_, err = execute(t, "serve", "--addr", l.Addr().String())
	assert.ErrorContains(t, err, "address already in use")
}

func TestCPUProfile(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "cpu.out")
	_, err := execute(t, "--cpuprofile", profile, "generate", "koch", "-n", "4")
	require.NoError(t, err)
	assert.FileExists(t, profile)
}

func TestCPUProfileStopsWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--cpuprofile", filepath.Join(dir, "failed.out"), "generate", "dragon")
	assert.ErrorIs(t, err, grammars.ErrUnknownDemo)

	_, err = execute(t, "--cpuprofile", filepath.Join(dir, "next.out"), "generate", "algae", "-n", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "next.out"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lsystem v"+Version+"\n"))
}
