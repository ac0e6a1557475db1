package splitter

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"
)

// Options configures a split run. Categories is injected data: the splitter
// never consults any table of its own.
type Options struct {
	InputPath  string
	OutputDir  string
	Preamble   string
	Lookahead  int
	Fallback   string
	Categories CategoryTable
	DryRun     bool
}

// Splitter wires the extractor, categorizer, writer and manifest generator
// into a single run over one input file.
type Splitter struct {
	opts      Options
	extractor *Extractor
	cat       *Categorizer
	progress  ProgressReporter
}

// New creates a splitter. A nil progress reporter is replaced with a no-op.
func New(opts Options, progress ProgressReporter) (*Splitter, error) {
	if opts.InputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if progress == nil {
		progress = &NoOpProgressReporter{}
	}

	cat, err := NewCategorizer(opts.Categories, opts.Fallback)
	if err != nil {
		return nil, err
	}

	return &Splitter{
		opts:      opts,
		extractor: NewExtractor(opts.Lookahead),
		cat:       cat,
		progress:  progress,
	}, nil
}

// Run reads the input file, extracts and categorizes every declaration
// block, writes one module file per category plus the manifest, and returns
// run statistics. In dry-run mode extraction and categorization still happen
// but nothing is written. Cancellation is honored between phases; a run is a
// single-shot batch, so there is nothing to resume.
func (s *Splitter) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()

	s.progress.OnScanStart(s.opts.InputPath)

	data, err := os.ReadFile(s.opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	blocks := s.extractor.Extract(string(data))
	for i := range blocks {
		blocks[i].Category = s.cat.Categorize(blocks[i].Name)
	}
	s.progress.OnScanComplete(len(blocks))

	stats := &Stats{
		BlocksFound:    len(blocks),
		CategoryCounts: make(map[string]int),
		DryRun:         s.opts.DryRun,
	}
	for _, b := range blocks {
		stats.CategoryCounts[b.Category]++
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.opts.DryRun {
		for label := range stats.CategoryCounts {
			stats.CategoriesWritten = append(stats.CategoriesWritten, label)
		}
		sort.Strings(stats.CategoriesWritten)
		stats.ProcessingSeconds = time.Since(start).Seconds()
		s.progress.OnComplete(stats)
		return stats, nil
	}

	writer, err := NewModuleWriter(s.opts.OutputDir, s.opts.Preamble)
	if err != nil {
		return nil, err
	}

	s.progress.OnWriteStart(len(stats.CategoryCounts))
	labels, _, err := writer.WriteModules(blocks, s.progress.OnModuleWritten)
	if err != nil {
		return nil, err
	}
	stats.CategoriesWritten = labels

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifestPath, err := writer.WriteManifest(labels)
	if err != nil {
		return nil, err
	}
	stats.ManifestPath = manifestPath
	s.progress.OnManifestWritten(manifestPath)

	stats.ProcessingSeconds = time.Since(start).Seconds()
	s.progress.OnComplete(stats)
	return stats, nil
}
