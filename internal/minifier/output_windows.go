//go:build windows

package minifier

import "os"

func (osFiles) ReplaceFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (osFiles) ProbeWritable(string) error { return nil }
