package registry

import (
	"iter"

	"padnav/internal/domain"
)

type entry struct {
	id   domain.NodeID
	rect domain.Rect
	live bool
}

// Registry tracks which nodes were drawn recently and where. Entries keep
// registration order so resolution ties break toward the first drawn node.
// A node survives one frame without re-registration, since hosts may run
// their update and draw passes out of order.
type Registry struct {
	entries []entry
	index   map[domain.NodeID]int
}

func New() *Registry {
	return &Registry{index: make(map[domain.NodeID]int)}
}

// BeginFrame evicts nodes not registered since the previous call, then
// clears the liveness flag on the survivors.
func (r *Registry) BeginFrame() {
	kept := r.entries[:0]
	clear(r.index)
	for _, e := range r.entries {
		if !e.live {
			continue
		}
		e.live = false
		r.index[e.id] = len(kept)
		kept = append(kept, e)
	}
	clear(r.entries[len(kept):])
	r.entries = kept
}

// Register records the node's rectangle for this frame, replacing any
// earlier one.
func (r *Registry) Register(id domain.NodeID, rect domain.Rect) {
	if i, ok := r.index[id]; ok {
		r.entries[i].rect = rect
		r.entries[i].live = true
		return
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, entry{id: id, rect: rect, live: true})
}

func (r *Registry) Rect(id domain.NodeID) (domain.Rect, bool) {
	i, ok := r.index[id]
	if !ok {
		return domain.Rect{}, false
	}
	return r.entries[i].rect, true
}

func (r *Registry) Has(id domain.NodeID) bool {
	_, ok := r.index[id]
	return ok
}

func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) IsEmpty() bool {
	return len(r.entries) == 0
}

// All iterates nodes in registration order
func (r *Registry) All() iter.Seq2[domain.NodeID, domain.Rect] {
	return func(yield func(domain.NodeID, domain.Rect) bool) {
		for _, e := range r.entries {
			if !yield(e.id, e.rect) {
				return
			}
		}
	}
}

// At returns the topmost registered node containing p, preferring the most
// recently registered one when nodes overlap.
func (r *Registry) At(p domain.Pos) (domain.NodeID, bool) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].rect.Contains(p) {
			return r.entries[i].id, true
		}
	}
	return 0, false
}
