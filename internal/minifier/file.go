package minifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/krachkiste/doctools/internal/logfields"
)

// Result summarizes one file minification.
type Result struct {
	Input    string
	Output   string
	BytesIn  int
	BytesOut int
	Duration time.Duration
}

// MinifyFile reads input, minifies it and writes the result to output. The output path is
// not touched unless the input was read and transformed successfully.
func (mf *Minifier) MinifyFile(ctx context.Context, input, output string) (Result, error) {
	start := time.Now()
	res := Result{Input: input, Output: output}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	slog.Info("Minimizing HTML source", logfields.Input(input))

	src, err := readInput(mf.files, input)
	if err != nil {
		return res, err
	}
	res.BytesIn = len(src)

	out, err := mf.Minify(src)
	if err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := writeOutput(mf.files, output, out); err != nil {
		return res, err
	}

	res.BytesOut = len(out)
	res.Duration = time.Since(start)
	slog.Debug("Minified HTML written",
		logfields.Output(output),
		logfields.BytesIn(res.BytesIn),
		logfields.BytesOut(res.BytesOut),
		logfields.Elapsed(start))
	return res, nil
}
