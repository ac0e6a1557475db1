package cli

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"

	"github.com/aldenms/typesplit/internal/splitter"
)

// SplitProgressReporter implements progress reporting with a progress bar
// for the write phase and a summary table at the end.
type SplitProgressReporter struct {
	quiet     bool
	writeBar  *progressbar.ProgressBar
	startTime time.Time
}

// NewSplitProgressReporter creates a new CLI progress reporter.
func NewSplitProgressReporter(quiet bool) *SplitProgressReporter {
	return &SplitProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (r *SplitProgressReporter) OnScanStart(inputPath string) {
	if r.quiet {
		return
	}
	log.Printf("Scanning %s...", inputPath)
}

func (r *SplitProgressReporter) OnScanComplete(blocksFound int) {
	if r.quiet {
		return
	}
	log.Printf("Found %d declaration blocks", blocksFound)
}

func (r *SplitProgressReporter) OnWriteStart(totalCategories int) {
	if r.quiet {
		return
	}
	r.writeBar = progressbar.NewOptions(totalCategories,
		progressbar.OptionSetDescription("Writing modules"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (r *SplitProgressReporter) OnModuleWritten(path string, blockCount int) {
	if r.quiet {
		return
	}
	if r.writeBar != nil {
		r.writeBar.Add(1)
	}
	log.Printf("Created %s with %d declarations", path, blockCount)
}

func (r *SplitProgressReporter) OnManifestWritten(path string) {
	if r.quiet {
		return
	}
	log.Printf("Created manifest %s", path)
}

func (r *SplitProgressReporter) OnComplete(stats *splitter.Stats) {
	if r.quiet {
		return
	}

	fmt.Println()
	if stats.DryRun {
		color.Yellow("✓ Dry run: %d blocks would fill %d modules (%.1fs)",
			stats.BlocksFound, len(stats.CategoriesWritten), stats.ProcessingSeconds)
	} else {
		color.Green("✓ Split complete: %d blocks into %d modules in %.1fs",
			stats.BlocksFound, len(stats.CategoriesWritten), stats.ProcessingSeconds)
	}

	renderSummaryTable(stats)

	if !stats.DryRun {
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  1. Remove or archive the original types file")
		fmt.Println("  2. Rebuild the target project to verify the generated modules")
	}
}

// renderSummaryTable prints per-category block counts, sorted by label.
func renderSummaryTable(stats *splitter.Stats) {
	labels := make([]string, 0, len(stats.CategoryCounts))
	for label := range stats.CategoryCounts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Module", "Blocks"})
	for _, label := range labels {
		tbl.AppendRow(table.Row{label, stats.CategoryCounts[label]})
	}
	tbl.AppendFooter(table.Row{"Total", stats.BlocksFound})
	tbl.Render()
}
