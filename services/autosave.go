package services

import (
	"sync"
	"time"
)

// DefaultQuietWindow is the pause after the last edit before an
// autosave fires.
const DefaultQuietWindow = 1500 * time.Millisecond

// Autosaver debounces a stream of edit notifications into single save
// calls. Notify arms a timer for the quiet window and re-arms it on
// every further edit; the save callback runs exactly once per burst,
// after the window elapses with no new edits. Stop cancels any pending
// fire so a save cannot race past teardown.
type Autosaver struct {
	mu      sync.Mutex
	quiet   time.Duration
	save    func()
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func NewAutosaver(quiet time.Duration, save func()) *Autosaver {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Autosaver{quiet: quiet, save: save}
}

// Notify records an edit, starting or resetting the quiet window.
func (a *Autosaver) Notify() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}

	if a.timer != nil {
		a.timer.Stop()
	}
	// The generation marks this arming; a fire from an older timer
	// that already expired but has not run yet sees a newer gen and
	// bows out instead of saving early or orphaning the new timer.
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.quiet, func() { a.fire(gen) })
}

// Flush runs a pending save immediately instead of waiting out the
// quiet window. A manual save uses this path.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	pending := a.timer != nil && a.timer.Stop()
	a.timer = nil
	a.gen++
	a.mu.Unlock()

	if pending {
		a.save()
	}
}

// Stop cancels any pending save and rejects further notifications.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Autosaver) fire(gen uint64) {
	a.mu.Lock()
	if a.stopped || gen != a.gen {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	a.mu.Unlock()

	a.save()
}
