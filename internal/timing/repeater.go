// Package timing turns continuously held triggers into discrete,
// rate-limited pulses: one on press, then repeats after a first delay.
package timing

import "time"

const (
	DefaultFirstDelay     = 600 * time.Millisecond
	DefaultRepeatInterval = 40 * time.Millisecond
)

// Repeater is the edge/repeat controller for a set of trigger keys
type Repeater[K comparable] struct {
	prev        map[K]struct{}
	suppressed  map[K]struct{}
	nextAllowed time.Duration
}

func NewRepeater[K comparable]() *Repeater[K] {
	return &Repeater[K]{
		prev:       make(map[K]struct{}),
		suppressed: make(map[K]struct{}),
	}
}

// Tick consumes this frame's raw trigger set and returns the effective one.
// Newly asserted keys fire immediately and push the next allowed time to
// now+firstDelay. Keys held since last frame fire only once now reaches the
// next allowed time, which then advances by interval. now is the host clock
// as a duration since its start.
func (r *Repeater[K]) Tick(raw map[K]struct{}, firstDelay, interval, now time.Duration) map[K]struct{} {
	for k := range r.suppressed {
		if _, held := raw[k]; !held {
			delete(r.suppressed, k)
		}
	}

	effective := make(map[K]struct{})
	var fresh, repeating bool
	for k := range raw {
		if _, ok := r.suppressed[k]; ok {
			continue
		}
		if _, held := r.prev[k]; held {
			repeating = true
			continue
		}
		fresh = true
		effective[k] = struct{}{}
	}

	switch {
	case fresh:
		r.nextAllowed = now + firstDelay
	case repeating && now >= r.nextAllowed:
		r.nextAllowed = now + interval
		for k := range raw {
			if _, ok := r.suppressed[k]; !ok {
				effective[k] = struct{}{}
			}
		}
	}

	clear(r.prev)
	for k := range raw {
		r.prev[k] = struct{}{}
	}
	return effective
}

// Suppress makes every key in keys ineffective until it is released
func (r *Repeater[K]) Suppress(keys map[K]struct{}) {
	for k := range keys {
		r.suppressed[k] = struct{}{}
	}
}

// SuppressHeld suppresses whatever was raw-held on the last tick
func (r *Repeater[K]) SuppressHeld() {
	r.Suppress(r.prev)
}

// Held reports whether k was raw-held on the last tick
func (r *Repeater[K]) Held(k K) bool {
	_, ok := r.prev[k]
	return ok
}

// Suppressed reports whether k is waiting for a release
func (r *Repeater[K]) Suppressed(k K) bool {
	_, ok := r.suppressed[k]
	return ok
}
