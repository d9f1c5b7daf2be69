// Package quotes rotates the decorative header quote. It never touches
// résumé state.
package quotes

import (
	"sync"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// RotateInterval is how long each quote stays current.
const RotateInterval = 10 * time.Second

// Rotator cycles through a fixed quote list on a background ticker.
type Rotator struct {
	mu     sync.Mutex
	quotes []string
	index  int

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewRotator starts a rotator over the built-in quote list.
func NewRotator() *Rotator {
	return newRotator(types.InspirationalQuotes, RotateInterval)
}

func newRotator(quotes []string, interval time.Duration) *Rotator {
	r := &Rotator{
		quotes: quotes,
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Rotator) run() {
	for {
		select {
		case <-r.ticker.C:
			r.advance()
		case <-r.done:
			return
		}
	}
}

func (r *Rotator) advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.quotes)
}

// Current returns the quote on display.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotes[r.index]
}

// Stop halts rotation. Safe to call more than once.
func (r *Rotator) Stop() {
	r.once.Do(func() {
		r.ticker.Stop()
		close(r.done)
	})
}
