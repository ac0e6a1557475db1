package watcher

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before the
// callback fires. Editors typically emit several events per save.
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher watches a single input file and fires a callback once changes
// settle. The parent directory is watched rather than the file itself, since
// many editors save by writing a temp file and renaming over the original,
// which drops a direct watch.
type FileWatcher struct {
	fsw      *fsnotify.Watcher
	path     string // cleaned absolute path of the watched file
	debounce time.Duration
}

// New creates a watcher for the given file. debounce <= 0 selects
// DefaultDebounce.
func New(path string, debounce time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FileWatcher{
		fsw:      fsw,
		path:     abs,
		debounce: debounce,
	}, nil
}

// Run blocks, invoking onChange after each debounced burst of events against
// the watched file, until ctx is cancelled. Cancellation is a clean shutdown
// and returns nil.
func (w *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer w.fsw.Close()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.shouldProcessEvent(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}

// shouldProcessEvent filters directory noise down to mutations of the
// watched file.
func (w *FileWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
