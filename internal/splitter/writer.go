package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DefaultPreamble is written at the top of every generated module file.
const DefaultPreamble = "use serde::{Deserialize, Serialize};"

// ModuleWriter serializes categorized blocks into one file per category.
// Files are written via temp-then-rename so a rerun overwrites each module
// atomically; runs over unchanged input produce byte-identical files.
type ModuleWriter struct {
	outputDir string
	preamble  string
}

// NewModuleWriter creates a writer rooted at outputDir, creating the
// directory if it does not exist.
func NewModuleWriter(outputDir, preamble string) (*ModuleWriter, error) {
	if preamble == "" {
		preamble = DefaultPreamble
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ModuleWriter{outputDir: outputDir, preamble: preamble}, nil
}

// GroupByCategory folds blocks into per-category content lists, preserving
// first-seen input order within each category.
func GroupByCategory(blocks []Block) map[string][]string {
	grouped := make(map[string][]string)
	for _, b := range blocks {
		grouped[b.Category] = append(grouped[b.Category], b.Content)
	}
	return grouped
}

// WriteModules writes one <label>.rs file per category present in blocks and
// returns the labels written, sorted, plus per-category block counts. Only
// categories with at least one block produce a file. onWritten, when non-nil,
// is invoked after each file lands with its path and block count.
func (w *ModuleWriter) WriteModules(blocks []Block, onWritten func(path string, count int)) ([]string, map[string]int, error) {
	grouped := GroupByCategory(blocks)

	labels := make([]string, 0, len(grouped))
	counts := make(map[string]int, len(grouped))
	for label, contents := range grouped {
		labels = append(labels, label)
		counts[label] = len(contents)
	}
	sort.Strings(labels)

	for _, label := range labels {
		path := filepath.Join(w.outputDir, label+".rs")
		content := w.preamble + "\n\n" + strings.Join(grouped[label], "\n\n") + "\n"
		if err := w.writeAtomic(path, []byte(content)); err != nil {
			return nil, nil, err
		}
		if onWritten != nil {
			onWritten(path, counts[label])
		}
	}

	return labels, counts, nil
}

// writeAtomic writes data to a uniquely named temp file in the output
// directory and renames it into place. The uuid suffix keeps concurrent
// invocations against the same directory from clobbering each other's temp
// files.
func (w *ModuleWriter) writeAtomic(path string, data []byte) error {
	tempPath := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// OutputDir returns the directory this writer emits into.
func (w *ModuleWriter) OutputDir() string {
	return w.outputDir
}
