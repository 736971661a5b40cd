// Package progress tracks in-flight fetches and mutations for the global
// busy indicator.
package progress

import "sync"

// Indicator counts in-flight operations. Observers hear only about the
// idle->busy and busy->idle transitions. The zero value is ready to use.
type Indicator struct {
	mu        sync.Mutex
	inFlight  int
	observers []func(active bool)
}

// Observe registers fn to be called on every transition.
func (i *Indicator) Observe(fn func(active bool)) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.observers = append(i.observers, fn)
}

func (i *Indicator) Start() {
	i.mu.Lock()
	i.inFlight++
	notify := i.inFlight == 1
	observers := i.observers
	i.mu.Unlock()

	if notify {
		for _, fn := range observers {
			fn(true)
		}
	}
}

// Done is a no-op when nothing is in flight.
func (i *Indicator) Done() {
	i.mu.Lock()
	if i.inFlight == 0 {
		i.mu.Unlock()
		return
	}
	i.inFlight--
	notify := i.inFlight == 0
	observers := i.observers
	i.mu.Unlock()

	if notify {
		for _, fn := range observers {
			fn(false)
		}
	}
}

func (i *Indicator) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.inFlight > 0
}

// Track brackets fn with Start/Done.
func (i *Indicator) Track(fn func() error) error {
	i.Start()
	defer i.Done()
	return fn()
}
