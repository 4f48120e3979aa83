package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"favicongen/config"
)

// debounceDelay is how long to wait after the last fsnotify event
// before regenerating
const debounceDelay = 500 * time.Millisecond

// Watcher monitors the source image and regenerates favicons on change
type Watcher struct {
	cfg     *config.Config
	gen     Regenerator
	watcher *fsnotify.Watcher
	events  chan Event

	// mu guards debounce and stopped; handleEvent runs under it so no
	// send on events can race with Stop closing the channel
	mu       sync.Mutex
	debounce map[string]*time.Timer
	stopped  bool
}

// Regenerator runs a full favicon generation pass
type Regenerator interface {
	Run() error
}

// Event represents a source image change
type Event struct {
	Type     EventType
	FilePath string
}

// EventType represents the type of file event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
)

// NewWatcher creates a new source image watcher
func NewWatcher(cfg *config.Config, gen Regenerator) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		cfg:      cfg,
		gen:      gen,
		watcher:  fsWatcher,
		events:   make(chan Event, 100),
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins monitoring the source image's directory
func (w *Watcher) Start() error {
	// Watch the directory rather than the file itself: editors often
	// replace the file on save, which would drop a file-level watch
	dir := filepath.Dir(w.cfg.Source.Path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching folder: %s", dir)

	go w.processEvents()

	return nil
}

// processEvents handles fsnotify events and converts them to our event type
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only the configured source image matters
			if filepath.Clean(event.Name) != filepath.Clean(w.cfg.Source.Path) {
				continue
			}

			// Debounce: wait before processing so rapid successive
			// events collapse into one pass
			w.mu.Lock()
			if w.stopped {
				w.mu.Unlock()
				return
			}
			if timer, exists := w.debounce[event.Name]; exists {
				timer.Stop()
			}
			w.debounce[event.Name] = time.AfterFunc(debounceDelay, func() {
				w.fire(event)
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// fire runs a debounced event unless the watcher has been stopped in
// the meantime
func (w *Watcher) fire(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	delete(w.debounce, event.Name)

	w.handleEvent(event)
}

// handleEvent processes a single source image event. Caller holds mu.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	var eventType EventType

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventCreated
		log.Printf("Source image created: %s", event.Name)
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventModified
		log.Printf("Source image modified: %s", event.Name)
	default:
		return // Ignore other events
	}

	// Send event to channel
	w.events <- Event{
		Type:     eventType,
		FilePath: event.Name,
	}

	log.Printf("Regenerating favicons from: %s", event.Name)
	if err := w.gen.Run(); err != nil {
		log.Printf("Failed to regenerate favicons: %v", err)
	}
}

// Events returns the event channel. It is closed by Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher, cancels pending debounce timers and closes
// the event channel
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.stopped {
		w.stopped = true
		for _, timer := range w.debounce {
			timer.Stop()
		}
		close(w.events)
	}
	w.mu.Unlock()

	return w.watcher.Close()
}
