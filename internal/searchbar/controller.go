// Package searchbar owns the free-text search box state: current text,
// target field, and the debounce window that collapses keystroke bursts
// into a single fetch intent.
package searchbar

import (
	"strings"
	"sync"
	"time"

	"roster-browser/internal/roster"
)

// DefaultDebounce is the delay after the last keystroke before a search
// fires. Controllers may override it.
const DefaultDebounce = 300 * time.Millisecond

// State describes where the controller is in its edit cycle.
type State string

const (
	// StateIdle means the text is empty and nothing is scheduled.
	StateIdle State = "idle"
	// StatePending means text was entered and the debounce timer is armed.
	StatePending State = "pending"
	// StateSettled means the current text+field has been handed to the sink.
	StateSettled State = "settled"
)

// Sink receives search intents. An empty text means "clear": an empty
// search against the given field.
type Sink func(text string, field roster.SearchField)

// Controller debounces free-text edits and fast-paths clear, field change
// and explicit submit. Safe for concurrent use; the timer callback runs on
// its own goroutine.
type Controller struct {
	mu     sync.Mutex
	window time.Duration
	sink   Sink

	text   string
	field  roster.SearchField
	state  State
	timer  *time.Timer
	gen    uint64
	closed bool
}

// New builds a controller with the given debounce window; window <= 0 falls
// back to DefaultDebounce.
func New(window time.Duration, sink Sink) *Controller {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Controller{
		window: window,
		sink:   sink,
		field:  roster.SearchFieldAll,
		state:  StateIdle,
	}
}

// Text returns the current raw text.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Field returns the current target field.
func (c *Controller) Field() roster.SearchField {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetText records a keystroke edit. Non-empty text restarts the single
// debounce timer; only the last edit inside the window fires. Clearing to
// empty bypasses debounce and signals a clear immediately.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.text = text
	c.cancelTimerLocked()

	if text == "" {
		c.state = StateSettled
		field := c.field
		c.mu.Unlock()
		c.sink("", field)
		return
	}

	c.state = StatePending
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.window, func() { c.fire(gen) })
	c.mu.Unlock()
}

// SetField switches the search target. With non-empty text the search
// re-issues immediately, no debounce; with empty text nothing fires.
func (c *Controller) SetField(field roster.SearchField) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.field = field
	if strings.TrimSpace(c.text) == "" {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	c.state = StateSettled
	text := c.text
	c.mu.Unlock()
	c.sink(text, field)
}

// Submit cancels any pending timer and fires immediately. Blank or
// whitespace-only text normalizes to the clear path.
func (c *Controller) Submit() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelTimerLocked()
	c.state = StateSettled
	text := strings.TrimSpace(c.text)
	field := c.field
	c.mu.Unlock()
	c.sink(text, field)
}

// Close cancels any pending timer. The sink never fires after Close.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.cancelTimerLocked()
}

// fire is the timer callback. The generation check makes a timer that lost
// the Stop race a no-op.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen || c.state != StatePending {
		c.mu.Unlock()
		return
	}
	c.state = StateSettled
	c.timer = nil
	text := c.text
	field := c.field
	c.mu.Unlock()
	c.sink(text, field)
}

func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}
