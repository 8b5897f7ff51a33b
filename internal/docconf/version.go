package docconf

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ReadVersion returns the content of the version file with trailing whitespace removed.
// A missing file is returned as-is (errors.Is(err, fs.ErrNotExist) holds); the
// documentation build cannot proceed without a version.
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}
