package resolve

import (
	"iter"
	"testing"

	"padnav/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	id   domain.NodeID
	rect domain.Rect
}

func layout(nodes ...node) iter.Seq2[domain.NodeID, domain.Rect] {
	return func(yield func(domain.NodeID, domain.Rect) bool) {
		for _, n := range nodes {
			if !yield(n.id, n.rect) {
				return
			}
		}
	}
}

func box(id domain.NodeID, x, y float32) node {
	return node{id: id, rect: domain.RectXYWH(x, y, 10, 10)}
}

const (
	a domain.NodeID = iota + 1
	b
	c
	d
)

func TestVerticalStack(t *testing.T) {
	nodes := layout(box(a, 0, 0), box(b, 0, 20), box(c, 0, 40))

	got, ok := Resolve(domain.DirectionUp, nodes, c, true)
	require.True(t, ok)
	assert.Equal(t, b, got)

	got, ok = Resolve(domain.DirectionUp, nodes, b, true)
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = Resolve(domain.DirectionDown, nodes, a, true)
	require.True(t, ok)
	assert.Equal(t, b, got)

	// nothing further up
	_, ok = Resolve(domain.DirectionUp, nodes, a, true)
	assert.False(t, ok)
}

func TestSideBySide(t *testing.T) {
	nodes := layout(box(a, 0, 0), box(b, 20, 0))

	got, ok := Resolve(domain.DirectionRight, nodes, a, true)
	require.True(t, ok)
	assert.Equal(t, b, got)

	got, ok = Resolve(domain.DirectionLeft, nodes, b, true)
	require.True(t, ok)
	assert.Equal(t, a, got)

	// same registry, same answer
	again, ok := Resolve(domain.DirectionLeft, nodes, b, true)
	require.True(t, ok)
	assert.Equal(t, got, again)

	_, ok = Resolve(domain.DirectionRight, nodes, b, true)
	assert.False(t, ok)
}

func TestStartingNodeWithoutFocus(t *testing.T) {
	// 2x2 grid: a b / c d
	nodes := layout(box(a, 0, 0), box(b, 20, 0), box(c, 0, 20), box(d, 20, 20))

	tests := []struct {
		dir  domain.Direction
		want domain.NodeID
	}{
		{domain.DirectionDown, a},
		{domain.DirectionUp, d},
		// transpose: right starts like down, left starts like up
		{domain.DirectionRight, a},
		{domain.DirectionLeft, d},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, ok := Resolve(tt.dir, nodes, 0, false)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmptyAndStale(t *testing.T) {
	_, ok := Resolve(domain.DirectionDown, layout(), 0, false)
	assert.False(t, ok)

	_, ok = Resolve(domain.DirectionDown, layout(), a, true)
	assert.False(t, ok)

	// focused id vanished from the registry
	_, ok = Resolve(domain.DirectionDown, layout(box(b, 0, 20)), a, true)
	assert.False(t, ok)
}

func TestPrefersAlignedOverNearOffset(t *testing.T) {
	focused := box(a, 0, 0)
	nearOffset := box(b, 30, 12) // min_y 2, drift 20
	farAligned := box(c, 0, 30)  // min_y 20, drift 0

	got, ok := Resolve(domain.DirectionDown, layout(focused, nearOffset, farAligned), a, true)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestSameRowIsAllowed(t *testing.T) {
	// candidate top touches the focused bottom exactly
	got, ok := Resolve(domain.DirectionDown, layout(box(a, 0, 0), box(b, 40, 10)), a, true)
	require.True(t, ok)
	assert.Equal(t, b, got)

	// candidate overlapping the focused row is excluded
	_, ok = Resolve(domain.DirectionDown, layout(box(a, 0, 0), box(b, 40, 5)), a, true)
	assert.False(t, ok)
}

func TestTiesGoToFirstRegistered(t *testing.T) {
	nodes := layout(box(a, 0, 0), box(c, -20, 20), box(b, 20, 20))
	got, ok := Resolve(domain.DirectionDown, nodes, a, true)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestDownwardNormalizes(t *testing.T) {
	r := domain.RectXYWH(1, 2, 3, 4)
	for _, dir := range []domain.Direction{domain.DirectionUp, domain.DirectionDown, domain.DirectionLeft, domain.DirectionRight} {
		got := Downward(dir, r)
		assert.LessOrEqual(t, got.Min.X, got.Max.X)
		assert.LessOrEqual(t, got.Min.Y, got.Max.Y)
	}
	assert.Equal(t, domain.Rect{Min: domain.Pos{X: 2, Y: 1}, Max: domain.Pos{X: 6, Y: 4}}, Downward(domain.DirectionRight, r))
}

func TestXDrift(t *testing.T) {
	f := domain.RectXYWH(0, 0, 10, 10)
	assert.Equal(t, float32(0), xDrift(f, domain.RectXYWH(5, 20, 10, 10)))
	assert.Equal(t, float32(5), xDrift(f, domain.RectXYWH(15, 20, 10, 10)))
	assert.Equal(t, float32(7), xDrift(f, domain.RectXYWH(-17, 20, 10, 10)))
}
