package cli

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldenms/typesplit/internal/splitter"
)

func TestSplitProgressReporter_QuietIsSilentAndSafe(t *testing.T) {
	t.Parallel()

	r := NewSplitProgressReporter(true)

	// None of these may panic even though no bar was ever created.
	r.OnScanStart("types.rs")
	r.OnScanComplete(3)
	r.OnWriteStart(2)
	r.OnModuleWritten("order.rs", 2)
	r.OnManifestWritten("mod.rs")
	r.OnComplete(&splitter.Stats{
		BlocksFound:       3,
		CategoryCounts:    map[string]int{"order": 2, "other": 1},
		CategoriesWritten: []string{"order", "other"},
	})
}

func TestSplitProgressReporter_WrittenWithoutStart(t *testing.T) {
	t.Parallel()

	// OnModuleWritten before OnWriteStart must tolerate the missing bar.
	r := NewSplitProgressReporter(false)
	r.OnModuleWritten("order.rs", 1)
}

// Not parallel: redirects the global log output.
func TestSplitProgressReporter_ReportsCreatedFiles(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	r := NewSplitProgressReporter(false)
	r.OnModuleWritten("src/types/order.rs", 12)

	assert.Contains(t, buf.String(), "Created src/types/order.rs with 12 declarations")
}
