// Package cli holds the pieces shared by the doctools and htmlmin binaries.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
	"github.com/krachkiste/doctools/internal/minifier"
)

// SetupLogging installs the default text logger on stderr.
func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// RunMinify minifies input into output with the fixed option set. Both paths are required;
// when one is missing a usage error is returned before any file is touched.
func RunMinify(ctx context.Context, prog, input, output string) error {
	if input == "" || output == "" {
		return ferrors.UsageError(fmt.Sprintf("Usage: %s <input_file> <output_file>", prog)).Build()
	}

	mf, err := minifier.New(minifier.DefaultOptions())
	if err != nil {
		return err
	}
	_, err = mf.MinifyFile(ctx, input, output)
	return err
}
