package capture

import "padnav/internal/input"

// Single accepts the first candidate only
func Single(c *Capture, _ input.Input) bool {
	return c.received.Len() == 0
}

// SingleOfSource accepts the first candidate coming from src
func SingleOfSource(src input.Source) Accept {
	return func(c *Capture, in input.Input) bool {
		return c.received.Len() == 0 && in.Source() == src
	}
}

// Chord accepts everything
func Chord(*Capture, input.Input) bool {
	return true
}

// OfSource accepts candidates from src only
func OfSource(src input.Source) Accept {
	return func(_ *Capture, in input.Input) bool {
		return in.Source() == src
	}
}

// SameSource accepts candidates from the source of the first received input
func SameSource(c *Capture, in input.Input) bool {
	for r := range c.received {
		return r.Source() == in.Source()
	}
	return true
}

// Vetted accepts candidates pred approves given the chord so far
func Vetted(pred func(received input.Set, in input.Input) bool) Accept {
	return func(c *Capture, in input.Input) bool {
		return pred(c.received, in)
	}
}
