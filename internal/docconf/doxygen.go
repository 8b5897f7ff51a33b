package docconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/krachkiste/doctools/internal/config"
	"github.com/krachkiste/doctools/internal/logfields"
)

// Runner executes an external command inside dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, capturing their output into the log.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return toolError(msgToolNotFound, name, err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running external command", logfields.Command(name), logfields.Dir(dir))
	err := cmd.Run()

	if out := stdout.String(); out != "" {
		slog.Debug("command stdout", "output", out)
	}
	if errOut := stderr.String(); errOut != "" {
		slog.Warn("command stderr", "error_output", errOut)
	}

	if err != nil {
		if errOut := strings.TrimSpace(stderr.String()); errOut != "" {
			return toolError(msgToolFailed, name, fmt.Errorf("%w: %s", err, errOut))
		}
		return toolError(msgToolFailed, name, err)
	}
	return nil
}

// HostedBuild reports whether the hosted documentation service runs this build.
// The service sets the flag to the literal string "True".
func HostedBuild(getenv func(string) string, key string) bool {
	return getenv(key) == "True"
}

// DoxygenGenerator produces the doxygen XML consumed by breathe.
type DoxygenGenerator struct {
	cfg    config.DoxygenConfig
	root   string
	runner Runner
	getenv func(string) string
	diag   io.Writer
}

// NewDoxygenGenerator creates a generator running doxygen from the repository root.
func NewDoxygenGenerator(cfg config.DoxygenConfig, root string) *DoxygenGenerator {
	return &DoxygenGenerator{
		cfg:    cfg,
		root:   root,
		runner: ExecRunner{},
		getenv: os.Getenv,
		diag:   os.Stderr,
	}
}

// WithRunner allows tests or callers to inject a custom runner.
func (g *DoxygenGenerator) WithRunner(r Runner) *DoxygenGenerator {
	if r != nil {
		g.runner = r
	}
	return g
}

// WithEnv replaces the environment lookup.
func (g *DoxygenGenerator) WithEnv(getenv func(string) string) *DoxygenGenerator {
	if getenv != nil {
		g.getenv = getenv
	}
	return g
}

// WithDiagnostics redirects the [FAIL] lines written when doxygen cannot run.
func (g *DoxygenGenerator) WithDiagnostics(w io.Writer) *DoxygenGenerator {
	if w != nil {
		g.diag = w
	}
	return g
}

// Enabled reports whether the hook will run doxygen.
func (g *DoxygenGenerator) Enabled() bool {
	return HostedBuild(g.getenv, g.cfg.HostedEnv)
}

// Generate runs doxygen if the build is hosted. It returns the runner's error unchanged.
func (g *DoxygenGenerator) Generate(ctx context.Context) (ran bool, err error) {
	if !g.Enabled() {
		slog.Debug("Not a hosted build, skipping doxygen", "env", g.cfg.HostedEnv)
		return false, nil
	}
	slog.Info("Generating doxygen XML", logfields.Dir(g.root), "doxyfile", g.cfg.Doxyfile)
	return true, g.runner.Run(ctx, g.root, g.cfg.Binary, g.cfg.Doxyfile)
}

// Hook is the builder-inited callback. Doxygen failures are reported and swallowed: the
// build proceeds without the C API pages.
func (g *DoxygenGenerator) Hook(ctx context.Context, _ *App) error {
	if _, err := g.Generate(ctx); err != nil {
		_, _ = fmt.Fprintln(g.diag, failureLine(err))
		slog.Warn("Doxygen extraction failed, continuing without API docs", logfields.Error(err))
	}
	return nil
}

func failureLine(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.ExitCode() < 0 {
			return fmt.Sprintf("[FAIL] doxygen terminated by signal: %s", exitErr.ProcessState)
		}
		return fmt.Sprintf("[FAIL] doxygen exited with status %d", exitErr.ExitCode())
	}
	return fmt.Sprintf("[FAIL] doxygen execution failed: %v", err)
}
