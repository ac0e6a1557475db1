package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for ModuleWriter:
// - One file per non-empty category, named <label>.rs
// - File content: preamble, blank line, blocks joined by blank lines, trailing newline
// - First-seen input order is preserved inside each file
// - Returned labels are sorted
// - Reruns produce byte-identical files
// - No temp files are left behind

func testBlocks() []Block {
	return []Block{
		{Name: "Side", Category: "order", Content: "pub enum Side {\n    Buy,\n}"},
		{Name: "CrossType", Category: "cross", Content: "pub enum CrossType {\n    Opening,\n}"},
		{Name: "OrdType", Category: "order", Content: "pub enum OrdType {\n    Market,\n}"},
	}
}

func TestModuleWriter_WritesOneFilePerCategory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewModuleWriter(dir, "")
	require.NoError(t, err)

	labels, counts, err := w.WriteModules(testBlocks(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"cross", "order"}, labels)
	assert.Equal(t, map[string]int{"order": 2, "cross": 1}, counts)

	data, err := os.ReadFile(filepath.Join(dir, "order.rs"))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, DefaultPreamble+"\n\n"))
	assert.True(t, strings.HasSuffix(content, "\n"))
	// Input order inside the file: Side before OrdType
	assert.Less(t, strings.Index(content, "pub enum Side"), strings.Index(content, "pub enum OrdType"))
	assert.Contains(t, content, "}\n\npub enum OrdType")
}

func TestModuleWriter_CustomPreamble(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewModuleWriter(dir, "use crate::fields::*;")
	require.NoError(t, err)

	_, _, err = w.WriteModules(testBlocks()[:1], nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "order.rs"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "use crate::fields::*;\n\n"))
}

func TestModuleWriter_CreatesOutputDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "src", "types")
	_, err := NewModuleWriter(dir, "")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestModuleWriter_RerunIsByteIdentical(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewModuleWriter(dir, "")
	require.NoError(t, err)

	_, _, err = w.WriteModules(testBlocks(), nil)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "order.rs"))
	require.NoError(t, err)

	_, _, err = w.WriteModules(testBlocks(), nil)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "order.rs"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestModuleWriter_NoTempFilesLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewModuleWriter(dir, "")
	require.NoError(t, err)

	_, _, err = w.WriteModules(testBlocks(), nil)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "stale temp file: %s", e.Name())
	}
}

func TestModuleWriter_WrittenCallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := NewModuleWriter(dir, "")
	require.NoError(t, err)

	var paths []string
	var counts []int
	_, _, err = w.WriteModules(testBlocks(), func(path string, count int) {
		paths = append(paths, filepath.Base(path))
		counts = append(counts, count)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cross.rs", "order.rs"}, paths)
	assert.Equal(t, []int{1, 2}, counts)
}
