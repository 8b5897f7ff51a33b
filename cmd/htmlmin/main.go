// Command htmlmin minifies one HTML file into another:
//
//	htmlmin <input_file> <output_file>
//
// It exits with status 0 on success and 1 on any error.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/krachkiste/doctools/internal/cli"
	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
	"github.com/krachkiste/doctools/internal/logfields"
)

const progName = "htmlmin"

type options struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	Input   string `arg:"" optional:"" name:"input_file" help:"HTML file to read"`
	Output  string `arg:"" optional:"" name:"output_file" help:"File to write the minified HTML to"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var c options
	exited := -1
	parser, err := kong.New(&c,
		kong.Name(progName),
		kong.Description("Minify an HTML file with a fixed option set."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
	)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).Report(err)
	}

	_, err = parser.Parse(args)
	if exited >= 0 {
		return exited
	}
	adapter := ferrors.NewCLIErrorAdapter(c.Verbose, nil).WithOutput(stderr)
	if err != nil {
		return adapter.Report(ferrors.UsageError("Usage: "+progName+" <input_file> <output_file>").WithCause(err).Build())
	}

	cli.SetupLogging(c.Verbose)
	slog.Debug("Running command", logfields.Command(progName))
	return adapter.Report(cli.RunMinify(ctx, progName, c.Input, c.Output))
}
