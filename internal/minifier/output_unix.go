//go:build !windows

package minifier

import (
	"os"

	"github.com/google/renameio/v2"
)

// ReplaceFile atomically replaces path with data, keeping the permissions of an existing
// file. A reader never observes a partially written output file.
func (osFiles) ReplaceFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644)
}

// ProbeWritable catches a read-only output file in a writable directory, which the atomic
// replace would otherwise overwrite.
func (osFiles) ProbeWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return f.Close()
}
