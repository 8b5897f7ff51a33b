package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/krachkiste/doctools/cmd/doctools/commands"
	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
	"github.com/krachkiste/doctools/internal/logfields"
	"github.com/krachkiste/doctools/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run parses args and executes the selected command. Every failure, including a malformed
// command line, yields exit status 1.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli commands.CLI
	exited := -1
	parser, err := kong.New(&cli,
		kong.Name("doctools"),
		kong.Description("Documentation build helpers: Sphinx settings and HTML minification."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
		commands.Vars(version.String()),
	)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).Report(err)
	}

	kctx, err := parser.Parse(args)
	if exited >= 0 {
		// --help or --version already printed.
		return exited
	}
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		return ferrors.NewCLIErrorAdapter(cli.Verbose, nil).WithOutput(stderr).Report(err)
	}

	slog.Debug("Running command", logfields.Command(kctx.Command()))
	global := &commands.Global{Context: ctx, Stdout: stdout}
	err = kctx.Run(global, &cli)
	return ferrors.NewCLIErrorAdapter(cli.Verbose, nil).WithOutput(stderr).Report(err)
}
