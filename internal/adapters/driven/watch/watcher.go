package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
	"github.com/recipeml-labs/recipeml-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// debounceDelay coalesces the burst of events a single SQLite write
// produces (main db, WAL, SHM) into one change notification.
const debounceDelay = 500 * time.Millisecond

// Watcher reports changes to the corpus database file.
// Events for unrelated files in the same directory are ignored.
type Watcher struct {
	fw      *fsnotify.Watcher
	target  string
	changes chan string
	done    chan struct{}
}

// NewWatcher watches the corpus database at dbPath. The containing
// directory is watched rather than the file itself, so the watch
// survives the file being replaced.
func NewWatcher(dbPath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := fw.Add(dir); err != nil {
		fw.Close() //nolint:errcheck
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fw:      fw,
		target:  filepath.Base(dbPath),
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns the channel of change notifications. Each value is
// the path of the changed database file. The channel is closed when
// the watcher is closed.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher and closes the changes channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

// loop filters raw filesystem events down to debounced corpus changes.
func (w *Watcher) loop() {
	defer close(w.changes)

	var (
		pending string
		timer   *time.Timer
		fire    <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending = event.Name
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- pending:
			default:
				// A notification is already queued; the rebuild it
				// triggers will pick up this change too.
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// relevant reports whether the event touches the corpus database.
// SQLite sidecar files (-wal, -shm) count as touching it.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return name == w.target || name == w.target+"-wal" || name == w.target+"-shm"
}
