package minifier

import (
	"errors"
	"io/fs"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

// fileAccess is the file I/O performed by MinifyFile.
type fileAccess interface {
	ReadFile(path string) ([]byte, error)
	// ProbeWritable fails if path exists and cannot be opened for writing.
	ProbeWritable(path string) error
	ReplaceFile(path string, data []byte) error
}

// osFiles implements fileAccess on the local file system.
type osFiles struct{}

func (osFiles) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// readInput reads the whole input file. A byte order mark selects the decoding (and is
// dropped); without one the bytes are used as they are.
func readInput(files fileAccess, path string) ([]byte, error) {
	data, err := files.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, ferrors.NotFoundError("input file not found").WithCause(err).WithPath(path).Build()
	case errors.Is(err, fs.ErrPermission):
		return nil, ferrors.PermissionError("permission denied reading input file").WithCause(err).WithPath(path).Build()
	case err != nil:
		return nil, ferrors.FileSystemError("failed to read input file").WithCause(err).WithPath(path).Build()
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return nil, ferrors.TransformError("failed to decode input file").WithCause(err).WithPath(path).Build()
	}
	return decoded, nil
}
