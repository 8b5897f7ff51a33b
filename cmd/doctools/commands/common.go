package commands

import (
	"context"
	"io"

	"github.com/alecthomas/kong"

	"github.com/krachkiste/doctools/internal/cli"
	"github.com/krachkiste/doctools/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Context context.Context
	Stdout  io.Writer
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"${config_path}"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Minify MinifyCmd `cmd:"" help:"Minify an HTML file into another file"`
	Conf   ConfCmd   `cmd:"" help:"Assemble the Sphinx settings and run the builder-inited hooks"`
	Init   InitCmd   `cmd:"" help:"Write a configuration file containing the defaults"`
}

// Vars are the interpolation variables used in CLI tags.
func Vars(versionString string) kong.Vars {
	return kong.Vars{
		"version":     versionString,
		"config_path": config.DefaultPath,
	}
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	cli.SetupLogging(c.Verbose)
	return nil
}
