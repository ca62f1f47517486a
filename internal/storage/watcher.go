package storage

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher notifies about changes to a single file.
//
// It watches the file's directory rather than the file itself, as editors
// (and FileHandler.Write) replace files by renaming over them, which ends
// watches on the file.
// Notifications are coalesced: while one is pending, further changes do not
// queue another.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	name    string

	changes chan struct{}

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup

	log zerolog.Logger
}

// NewWatcher starts watching the given file.
func NewWatcher(filename string, logger zerolog.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("could not resolve '%s' (%w)", filename, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create watcher (%w)", err)
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("could not watch directory of '%s' (%w)", absPath, err)
	}

	w := &Watcher{
		watcher: fsw,
		name:    absPath,
		changes: make(chan struct{}, 1),
		closeCh: make(chan struct{}),
		log:     logger.With().Str("component", "watcher").Logger(),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Changes returns the channel on which changes to the file are announced.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	close(w.changes)

	return w.watcher.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.concerns(event) {
				continue
			}
			w.log.Trace().Str("op", event.Op.String()).Msg("file changed")
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// concerns returns whether the event changes the content of the watched file.
func (w *Watcher) concerns(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.name {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
