package minifier

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	ferrors "github.com/krachkiste/doctools/internal/foundation/errors"
)

const sampleHTML = "<!DOCTYPE html>\n<html>\n<head>\n  <title>t</title>\n</head>\n<body>\n  <p>hello   world</p>\n</body>\n</html>\n"

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

// deniedFiles fails reads or writability checks with a permission error, independent of the
// privileges the tests run with.
type deniedFiles struct {
	osFiles
	denyRead  bool
	denyWrite bool
	replaced  []string
}

func (d *deniedFiles) ReadFile(path string) ([]byte, error) {
	if d.denyRead {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return d.osFiles.ReadFile(path)
}

func (d *deniedFiles) ProbeWritable(path string) error {
	if d.denyWrite {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	return d.osFiles.ProbeWritable(path)
}

func (d *deniedFiles) ReplaceFile(path string, data []byte) error {
	d.replaced = append(d.replaced, path)
	return d.osFiles.ReplaceFile(path, data)
}

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMinifyFile_Success(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o644)

	res, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.NoError(t, err)

	got := readFile(t, out)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "hello world")
	assert.Equal(t, len(sampleHTML), res.BytesIn)
	assert.Equal(t, len(got), res.BytesOut)
}

func TestMinifyFile_ReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, "<p>new</p>", 0o644)
	writeFile(t, out, "old content that is longer than the result", 0o640)

	_, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, "<p>new</p>", readFile(t, out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestMinifyFile_InputNotFound(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "missing.html"), filepath.Join(dir, "out.html")
	writeFile(t, out, "untouched", 0o644)

	_, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
	assert.Contains(t, err.Error(), in)
	assert.Equal(t, "untouched", readFile(t, out))
}

func TestMinifyFile_InputNotFoundCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.html")

	_, err := newDefault(t).MinifyFile(context.Background(), filepath.Join(dir, "missing.html"), out)
	require.Error(t, err)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMinifyFile_InputUnreadable(t *testing.T) {
	skipIfRoot(t)
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o000)
	writeFile(t, out, "untouched", 0o644)

	_, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryPermission))
	assert.Contains(t, err.Error(), "reading input file")
	assert.Equal(t, "untouched", readFile(t, out))
}

func TestMinifyFile_InputPermissionDenied(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o644)
	writeFile(t, out, "untouched", 0o644)
	files := &deniedFiles{denyRead: true}
	mf := newDefault(t)
	mf.files = files

	_, err := mf.MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryPermission))
	assert.Contains(t, err.Error(), "permission denied reading input file: "+in)
	assert.Empty(t, files.replaced)
	assert.Equal(t, "untouched", readFile(t, out))
}

func TestMinifyFile_OutputPermissionDenied(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o644)
	writeFile(t, out, "untouched", 0o644)
	files := &deniedFiles{denyWrite: true}
	mf := newDefault(t)
	mf.files = files

	_, err := mf.MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryPermission))
	assert.Contains(t, err.Error(), "permission denied writing output file: "+out)
	assert.Empty(t, files.replaced)
	assert.Equal(t, "untouched", readFile(t, out))
}

func TestMinifyFile_OutputIsDirectory(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out")
	writeFile(t, in, sampleHTML, 0o644)
	require.NoError(t, os.Mkdir(out, 0o755))

	_, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
	assert.Contains(t, err.Error(), "failed to write output file: "+out)
	info, statErr := os.Stat(out)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestMinifyFile_OutputReadOnly(t *testing.T) {
	skipIfRoot(t)
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o644)
	writeFile(t, out, "untouched", 0o444)

	_, err := newDefault(t).MinifyFile(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryPermission))
	assert.Contains(t, err.Error(), "writing output file")
	assert.Equal(t, "untouched", readFile(t, out))
}

func TestMinifyFile_OutputDirectoryReadOnly(t *testing.T) {
	skipIfRoot(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	writeFile(t, in, sampleHTML, 0o644)
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := newDefault(t).MinifyFile(context.Background(), in, filepath.Join(locked, "out.html"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryPermission))
}

func TestMinifyFile_OutputDirectoryMissing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	writeFile(t, in, sampleHTML, 0o644)

	_, err := newDefault(t).MinifyFile(context.Background(), in, filepath.Join(dir, "nope", "out.html"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestMinifyFile_InputIsDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := newDefault(t).MinifyFile(context.Background(), dir, filepath.Join(dir, "out.html"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}

func TestMinifyFile_Canceled(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.html"), filepath.Join(dir, "out.html")
	writeFile(t, in, sampleHTML, 0o644)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDefault(t).MinifyFile(ctx, in, out)
	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadInput_ByteOrderMarks(t *testing.T) {
	dir := t.TempDir()

	utf8Path := filepath.Join(dir, "utf8.html")
	writeFile(t, utf8Path, "\ufeff<p>x</p>", 0o644)
	got, err := readInput(osFiles{}, utf8Path)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(got))

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	utf16, err := enc.String("<p>é</p>")
	require.NoError(t, err)
	utf16Path := filepath.Join(dir, "utf16.html")
	writeFile(t, utf16Path, utf16, 0o644)
	got, err = readInput(osFiles{}, utf16Path)
	require.NoError(t, err)
	assert.Equal(t, "<p>é</p>", string(got))

	plainPath := filepath.Join(dir, "plain.html")
	writeFile(t, plainPath, "<p>x</p>", 0o644)
	got, err = readInput(osFiles{}, plainPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(got))
}
