package docconf

import (
	"errors"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

const (
	msgToolNotFound = "executable not found"
	msgToolFailed   = "external command failed"
)

var (
	// ErrToolNotFound matches runner errors for an executable missing from PATH.
	ErrToolNotFound error = ferrors.ExternalError(msgToolNotFound).Build()
	// ErrToolFailed matches runner errors for a command that exited non-zero or was killed.
	ErrToolFailed error = ferrors.ExternalError(msgToolFailed).Build()
	// ErrUnknownFormat indicates an unsupported settings output format.
	ErrUnknownFormat = errors.New("unknown settings format")
)

// toolError classifies a failure of an external tool. These never abort a build.
func toolError(msg, name string, cause error) error {
	return ferrors.ExternalError(msg).WithCause(cause).WithContext("tool", name).Build()
}
