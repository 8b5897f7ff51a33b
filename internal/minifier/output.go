package minifier

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

// writeOutput writes the whole result to path. A symlinked path is written through to its
// target; the link itself stays in place.
func writeOutput(files fileAccess, path string, data []byte) error {
	target := resolveOutput(path)
	err := files.ProbeWritable(target)
	if err == nil {
		err = files.ReplaceFile(target, data)
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrPermission):
		return ferrors.PermissionError("permission denied writing output file").WithCause(err).WithPath(path).Build()
	case errors.Is(err, fs.ErrNotExist):
		return ferrors.NotFoundError("output directory not found").WithCause(err).WithPath(path).Build()
	default:
		return ferrors.FileSystemError("failed to write output file").WithCause(err).WithPath(path).Build()
	}
}

// resolveOutput follows symlinks in path. A dangling link resolves to its (not yet
// existing) target; a path that is not a link is returned unchanged.
func resolveOutput(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	target, err := os.Readlink(path)
	if err != nil {
		return path
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}
