package splitter

import (
	"path/filepath"
	"sort"
	"strings"
)

// ManifestFileName is the index file declaring and re-exporting every
// generated category module.
const ManifestFileName = "mod.rs"

// RenderManifest builds the mod.rs content for the given category labels:
// one mod declaration and one pub-use re-export per label, both in sorted
// order so reruns over unchanged input are byte-identical.
func RenderManifest(categories []string) string {
	sorted := make([]string, len(categories))
	copy(sorted, categories)
	sort.Strings(sorted)

	var b strings.Builder
	b.WriteString("// Re-export all types from sub-modules\n\n")
	for _, label := range sorted {
		b.WriteString("mod " + label + ";\n")
	}
	b.WriteString("\n// Re-export all public types\n")
	for _, label := range sorted {
		b.WriteString("pub use " + label + "::*;\n")
	}
	return b.String()
}

// WriteManifest renders and atomically writes the manifest into the writer's
// output directory, returning its path.
func (w *ModuleWriter) WriteManifest(categories []string) (string, error) {
	path := filepath.Join(w.outputDir, ManifestFileName)
	if err := w.writeAtomic(path, []byte(RenderManifest(categories))); err != nil {
		return "", err
	}
	return path, nil
}
