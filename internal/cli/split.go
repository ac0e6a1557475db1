package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aldenms/typesplit/internal/config"
	"github.com/aldenms/typesplit/internal/splitter"
	"github.com/aldenms/typesplit/internal/watcher"
)

var (
	inputFlag  string
	outputFlag string
	quietFlag  bool
	dryRunFlag bool
	watchFlag  bool
)

// splitCmd represents the split command
var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the types file into categorized module files",
	Long: `Split scans the configured source file, extracts every enum declaration
together with its doc comments, attributes and impl block, assigns each one
a category from the configured table, and writes one module file per
category plus a mod.rs manifest.

The scan is textual: enum and impl extents are recovered by per-line brace
counting, and an impl block is only attached when it follows its enum within
the configured lookahead window. The generated files are expected to be
verified by the target project's own build afterwards.

Examples:
  # Split using typesplit.yml in the current directory
  typesplit split

  # Override input and output locations
  typesplit split --input src/types.rs --output src/types

  # Report what would be written without touching the filesystem
  typesplit split --dry-run

  # Re-split whenever the input file changes
  typesplit split --watch
`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "source file to split (overrides config)")
	splitCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output directory (overrides config)")
	splitCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output except errors")
	splitCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Extract and categorize but write nothing")
	splitCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the input file and re-split on change")
}

func runSplit(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling split...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags beat config file and environment
	if cmd.Flags().Changed("input") {
		cfg.Source.Path = inputFlag
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = outputFlag
	}

	opts := cfg.ToSplitterOptions()
	opts.DryRun = dryRunFlag

	if verbose && !quietFlag {
		log.Printf("Splitting %s into %s (%d categories configured)",
			opts.InputPath, opts.OutputDir, len(opts.Categories))
	}

	progress := NewSplitProgressReporter(quietFlag)

	s, err := splitter.New(opts, progress)
	if err != nil {
		return fmt.Errorf("failed to create splitter: %w", err)
	}

	stats, err := s.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("split cancelled")
		}
		return fmt.Errorf("split failed: %w", err)
	}

	// Print summary (if not quiet, OnComplete already printed it)
	if quietFlag {
		fmt.Printf("Split complete: %d blocks into %d modules in %.2fs\n",
			stats.BlocksFound, len(stats.CategoriesWritten), stats.ProcessingSeconds)
	}

	if watchFlag {
		return runWatch(ctx, s, opts.InputPath)
	}

	return nil
}

// runWatch blocks re-running the splitter each time the input file changes,
// until the context is cancelled.
func runWatch(ctx context.Context, s *splitter.Splitter, inputPath string) error {
	w, err := watcher.New(inputPath, 0)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputPath, err)
	}

	if !quietFlag {
		log.Println("Watching for changes (Ctrl+C to stop)...")
	}

	if err := w.Run(ctx, func() {
		if _, err := s.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Re-split failed: %v", err)
		}
	}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch mode failed: %w", err)
	}

	if !quietFlag {
		log.Println("Watch mode stopped")
	}
	return nil
}

// loadConfig honors an explicit --config path, falling back to searching
// the working directory for typesplit.yml.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.NewFileLoader(cfgFile).Load()
	}
	return config.LoadConfig()
}
