package listings

import (
	"sync"
	"time"
)

// DefaultWindowSize and DefaultAdvanceEvery match the dashboard strips: four
// cards at a time, scrolling every three seconds.
const (
	DefaultWindowSize   = 4
	DefaultAdvanceEvery = 3 * time.Second
)

// Window returns the visible slice of a strip. Collections that fit inside the
// window are returned whole; otherwise the contiguous slice starting at index
// is returned. Keeping index within [0, len-size] is the rotator's job, not
// Window's.
func Window[T any](collection []T, size, index int) []T {
	if len(collection) <= size {
		return collection
	}
	return collection[index : index+size]
}

// Rotator owns the current offset of one carousel strip. Advance steps the
// offset through [0, length-size] and restarts at 0 after the last full
// window, so every window is always full-size. The ticker only runs while the
// collection is larger than the window; Stop ends it deterministically.
type Rotator struct {
	size  int
	every time.Duration

	mu     sync.Mutex
	index  int
	length int

	ticker  *time.Ticker
	done    chan struct{}
	running bool
}

func NewRotator(size int, every time.Duration) *Rotator {
	return &Rotator{size: size, every: every}
}

// Index returns the current start offset.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// SetLength records the latest collection size, clamps the offset into the
// valid range, and starts or stops the timer as the strip crosses the window
// size. Collections at or below the window size leave the rotator inert.
func (r *Rotator) SetLength(n int) {
	r.mu.Lock()
	r.length = n
	r.clampLocked()
	shouldRun := n > r.size
	wasRunning := r.running
	r.mu.Unlock()

	if shouldRun && !wasRunning {
		r.start()
	}
	if !shouldRun && wasRunning {
		r.Stop()
	}
}

// Advance moves to the next start offset: (index+1) mod (length-size+1).
// It re-clamps first so a collection that shrank mid-rotation can never
// produce an out-of-range window.
func (r *Rotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.length <= r.size {
		return
	}
	r.clampLocked()
	r.index = (r.index + 1) % (r.length - r.size + 1)
}

func (r *Rotator) clampLocked() {
	max := r.length - r.size
	if max < 0 {
		max = 0
	}
	if r.index > max {
		r.index = 0
	}
	if r.index < 0 {
		r.index = 0
	}
}

func (r *Rotator) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.ticker = time.NewTicker(r.every)
	r.done = make(chan struct{})
	r.running = true
	ticker, done := r.ticker, r.done
	r.mu.Unlock()

	go func() {
		for {
			select {
			case <-ticker.C:
				r.Advance()
			case <-done:
				return
			}
		}
	}()
}

// Stop halts the timer goroutine. Safe to call repeatedly; after Stop returns
// no further ticks advance the offset.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.running = false
	r.mu.Unlock()
}
