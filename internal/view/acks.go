package view

import (
	"sync"
	"time"
)

// CopyAckDuration is how long a copy control shows its "copied" state.
const CopyAckDuration = 2000 * time.Millisecond

// Stopper cancels a scheduled callback.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it through a small adapter.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// CopyAcks tracks which copy controls currently show "copied". Every control
// has its own timer; marking one control never shortens or extends another.
type CopyAcks struct {
	mu       sync.Mutex
	ttl      time.Duration
	after    AfterFunc
	gen      map[string]uint64
	timers   map[string]Stopper
	onChange func(id string, copied bool)
}

// AckOption customises CopyAcks.
type AckOption func(*CopyAcks)

// WithAfterFunc replaces the scheduler, mainly for tests.
func WithAfterFunc(after AfterFunc) AckOption {
	return func(a *CopyAcks) {
		if after != nil {
			a.after = after
		}
	}
}

// NewCopyAcks returns a tracker reverting marks after ttl (CopyAckDuration when ttl <= 0).
func NewCopyAcks(ttl time.Duration, opts ...AckOption) *CopyAcks {
	if ttl <= 0 {
		ttl = CopyAckDuration
	}

	a := &CopyAcks{
		ttl:    ttl,
		after:  realAfterFunc,
		gen:    make(map[string]uint64),
		timers: make(map[string]Stopper),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// OnChange registers the callback invoked whenever a control flips state.
// It runs outside the tracker lock, possibly on a timer goroutine.
func (a *CopyAcks) OnChange(fn func(id string, copied bool)) {
	if a == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.onChange = fn
}

// Mark shows id as copied for the tracker's ttl, restarting its timer if it was already marked.
func (a *CopyAcks) Mark(id string) {
	if a == nil || id == "" {
		return
	}

	a.mu.Lock()
	a.gen[id]++
	g := a.gen[id]

	if t, ok := a.timers[id]; ok {
		t.Stop()
	}

	a.timers[id] = a.after(a.ttl, func() { a.expire(id, g) })
	notify := a.onChange
	a.mu.Unlock()

	if notify != nil {
		notify(id, true)
	}
}

func (a *CopyAcks) expire(id string, g uint64) {
	a.mu.Lock()
	if a.gen[id] != g {
		a.mu.Unlock()

		return
	}

	delete(a.timers, id)
	notify := a.onChange
	a.mu.Unlock()

	if notify != nil {
		notify(id, false)
	}
}

// IsCopied reports whether id is currently acknowledged.
func (a *CopyAcks) IsCopied(id string) bool {
	if a == nil {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.timers[id]

	return ok
}

// Stop cancels every pending revert. Marks stay in place.
func (a *CopyAcks) Stop() {
	if a == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, t := range a.timers {
		t.Stop()
	}
}
