package registry

import (
	"slices"
	"testing"

	"padnav/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(r *Registry) []domain.NodeID {
	var out []domain.NodeID
	for id := range r.All() {
		out = append(out, id)
	}
	return out
}

func TestRegisterOverwritesWithinFrame(t *testing.T) {
	r := New()
	r.BeginFrame()
	r.Register(1, domain.RectXYWH(0, 0, 10, 10))
	r.Register(1, domain.RectXYWH(5, 5, 10, 10))

	assert.Equal(t, 1, r.Len())
	rect, ok := r.Rect(1)
	require.True(t, ok)
	assert.Equal(t, domain.RectXYWH(5, 5, 10, 10), rect)
}

func TestEvictionToleratesOneFrame(t *testing.T) {
	r := New()
	r.BeginFrame()
	r.Register(1, domain.RectXYWH(0, 0, 1, 1))
	r.Register(2, domain.RectXYWH(0, 2, 1, 1))

	// frame 2: only node 1 is drawn, node 2 still survives this frame
	r.BeginFrame()
	assert.True(t, r.Has(2))
	r.Register(1, domain.RectXYWH(0, 0, 1, 1))

	// frame 3: node 2 was not seen during frame 2
	r.BeginFrame()
	assert.True(t, r.Has(1))
	assert.False(t, r.Has(2))
	_, ok := r.Rect(2)
	assert.False(t, ok)

	// frame 4: nothing was drawn during frame 3
	r.BeginFrame()
	assert.True(t, r.IsEmpty())
}

func TestOrderIsRegistrationOrder(t *testing.T) {
	r := New()
	r.BeginFrame()
	for _, id := range []domain.NodeID{30, 10, 20} {
		r.Register(id, domain.RectXYWH(0, float32(id), 1, 1))
	}
	assert.Equal(t, []domain.NodeID{30, 10, 20}, ids(r))

	// eviction keeps the survivors' order and their lookups intact
	r.BeginFrame()
	r.Register(20, domain.RectXYWH(0, 0, 1, 1))
	r.Register(30, domain.RectXYWH(0, 0, 1, 1))
	r.BeginFrame()
	assert.Equal(t, []domain.NodeID{30, 20}, ids(r))
	rect, ok := r.Rect(20)
	require.True(t, ok)
	assert.Equal(t, domain.RectXYWH(0, 0, 1, 1), rect)

	r.Register(40, domain.RectXYWH(0, 0, 1, 1))
	assert.True(t, slices.Contains(ids(r), 40))
}

func TestAtPrefersLatest(t *testing.T) {
	r := New()
	r.BeginFrame()
	r.Register(1, domain.RectXYWH(0, 0, 10, 10))
	r.Register(2, domain.RectXYWH(5, 5, 10, 10))

	id, ok := r.At(domain.Pos{X: 6, Y: 6})
	require.True(t, ok)
	assert.Equal(t, domain.NodeID(2), id)

	id, ok = r.At(domain.Pos{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, domain.NodeID(1), id)

	_, ok = r.At(domain.Pos{X: 50, Y: 50})
	assert.False(t, ok)
}
