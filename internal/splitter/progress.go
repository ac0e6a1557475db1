package splitter

// ProgressReporter provides callbacks for reporting split progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnScanStart is called before the input file is scanned.
	OnScanStart(inputPath string)

	// OnScanComplete is called once extraction finishes.
	OnScanComplete(blocksFound int)

	// OnWriteStart is called before module files are written.
	OnWriteStart(totalCategories int)

	// OnModuleWritten is called after each category file lands.
	OnModuleWritten(path string, blockCount int)

	// OnManifestWritten is called after the manifest lands.
	OnManifestWritten(path string)

	// OnComplete is called when the run finishes successfully.
	OnComplete(stats *Stats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnScanStart(inputPath string)                {}
func (n *NoOpProgressReporter) OnScanComplete(blocksFound int)              {}
func (n *NoOpProgressReporter) OnWriteStart(totalCategories int)            {}
func (n *NoOpProgressReporter) OnModuleWritten(path string, blockCount int) {}
func (n *NoOpProgressReporter) OnManifestWritten(path string)               {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)                     {}
