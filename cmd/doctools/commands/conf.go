package commands

import (
	"bytes"
	"log/slog"
	"os"
	"time"

	"github.com/krachkiste/doctools/internal/config"
	"github.com/krachkiste/doctools/internal/docconf"
	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
	"github.com/krachkiste/doctools/internal/logfields"
)

// ConfCmd implements the 'conf' command.
type ConfCmd struct {
	Format    string `short:"f" default:"python" help:"Output format (python, yaml or json)"`
	Output    string `short:"o" help:"Write the settings to this file instead of stdout"`
	Root      string `help:"Repository root (overrides project.root)"`
	SkipHooks bool   `help:"Do not run the builder-inited hooks"`
}

// Run executes the conf command.
func (c *ConfCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	return c.run(g, cfg, time.Now())
}

func (c *ConfCmd) run(g *Global, cfg *config.Config, now time.Time) error {
	if c.Root != "" {
		cfg.Project.Root = c.Root
	}
	format, err := docconf.ParseFormat(c.Format)
	if err != nil {
		return ferrors.UsageError(err.Error()).WithCause(err).Build()
	}

	// A missing version file aborts here with the underlying error.
	settings, paths, err := docconf.Load(cfg, now)
	if err != nil {
		return err
	}

	app := docconf.NewApp(settings, paths)
	docconf.Setup(app, docconf.NewDoxygenGenerator(cfg.Doxygen, paths.Root))
	if !c.SkipHooks {
		if err := app.Emit(g.Context, docconf.EventBuilderInited); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := settings.Encode(&buf, format); err != nil {
		return ferrors.InternalError("failed to render settings").WithCause(err).Build()
	}

	if c.Output == "" {
		_, err := g.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return ferrors.FileSystemError("failed to write settings").WithCause(err).WithPath(c.Output).Build()
	}
	slog.Info("Settings written", logfields.Output(c.Output), logfields.Format(string(format)))
	return nil
}
