package input

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is an unordered collection of inputs. A chord is a Set whose members
// are pressed together.
type Set map[Input]struct{}

func NewSet(ins ...Input) Set {
	s := make(Set, len(ins))
	for _, in := range ins {
		s[in] = struct{}{}
	}
	return s
}

func (s Set) Has(in Input) bool {
	_, ok := s[in]
	return ok
}

func (s Set) Add(in Input) {
	s[in] = struct{}{}
}

// AddExclusive adds in after evicting its opposite (the other axis pole or
// wheel direction), so a set never holds both halves of one physical control.
func (s Set) AddExclusive(in Input) {
	if opp, ok := in.Opposite(); ok {
		delete(s, opp)
	}
	s[in] = struct{}{}
}

func (s Set) Remove(in Input) {
	delete(s, in)
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Clone() Set {
	if s == nil {
		return Set{}
	}
	return maps.Clone(s)
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for in := range s {
		if !other.Has(in) {
			return false
		}
	}
	return true
}

// Intersect keeps only the members also present in other
func (s Set) Intersect(other Set) {
	for in := range s {
		if !other.Has(in) {
			delete(s, in)
		}
	}
}

// Minus returns a new set holding the members of s not in other
func (s Set) Minus(other Set) Set {
	out := make(Set, len(s))
	for in := range s {
		if !other.Has(in) {
			out[in] = struct{}{}
		}
	}
	return out
}

// Any reports whether any member of s is in other
func (s Set) Any(other Set) bool {
	for in := range s {
		if other.Has(in) {
			return true
		}
	}
	return false
}

// All iterates the members in their stable display order
func (s Set) All() iter.Seq[Input] {
	return slices.Values(s.Sorted())
}

// Sorted returns the members in a stable order: by kind, then gamepad,
// then code.
func (s Set) Sorted() []Input {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, Compare)
	return out
}

// Sources returns the distinct sources of the members, keyboard-and-mouse
// first and then gamepads by id.
func (s Set) Sources() []Source {
	var out []Source
	for in := range s {
		src := in.Source()
		if !slices.Contains(out, src) {
			out = append(out, src)
		}
	}
	slices.SortFunc(out, func(a, b Source) int {
		if a.isGamepad != b.isGamepad {
			if a.isGamepad {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.gamepad, b.gamepad)
	})
	return out
}

func (s Set) String() string {
	return FormatChord(s.Sorted())
}

// Compare orders inputs for display
func Compare(a, b Input) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Gamepad, b.Gamepad); c != 0 {
		return c
	}
	return cmp.Compare(a.Code, b.Code)
}

// FormatChord renders a chord as its members joined by " & " in stable order
func FormatChord(ins []Input) string {
	sorted := slices.Clone(ins)
	slices.SortFunc(sorted, Compare)
	sorted = slices.Compact(sorted)
	parts := make([]string, len(sorted))
	for i, in := range sorted {
		parts[i] = in.String()
	}
	return strings.Join(parts, " & ")
}
