package bindings_test

import (
	"slices"
	"testing"

	"padnav/internal/bindings"
	"padnav/internal/domain"
	"padnav/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuAction int

const (
	nextMenu menuAction = iota + 1
	prevMenu
)

type deleteAction struct{}

func resolved(b *bindings.Bindings, pressed ...input.Input) []bindings.Trigger {
	return slices.Collect(b.ResolvePressed(input.NewSet(pressed...)))
}

func TestDefaultBindings(t *testing.T) {
	b := bindings.Default()

	tests := []struct {
		name string
		in   input.Input
		want bindings.CommandKind
	}{
		{"arrow up", input.Keyboard(input.KeyUp), bindings.CommandNavigateUp},
		{"arrow right", input.Keyboard(input.KeyRight), bindings.CommandNavigateRight},
		{"dpad button", input.Button(0, input.ButtonDPadLeft), bindings.CommandNavigateLeft},
		{"dpad axis up", input.AxisPositive(1, input.AxisDPadY), bindings.CommandNavigateUp},
		{"left stick down", input.AxisNegative(0, input.AxisLeftStickY), bindings.CommandNavigateDown},
		{"left stick right", input.AxisPositive(0, input.AxisLeftStickX), bindings.CommandNavigateRight},
		{"south clicks", input.Button(3, input.ButtonSouth), bindings.CommandClick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := b.Lookup(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, cmd.Kind)
		})
	}

	// Enter and Space are left to the toolkit
	_, ok := b.Lookup(input.Keyboard(input.KeyEnter))
	assert.False(t, ok)
	_, ok = b.Lookup(input.Keyboard(input.KeySpace))
	assert.False(t, ok)
	// the right stick is not wired
	_, ok = b.Lookup(input.AxisPositive(0, input.AxisRightStickX))
	assert.False(t, ok)
}

func TestDefaultWithOptions(t *testing.T) {
	b := bindings.DefaultWith(bindings.Options{DisableNavigation: true})
	_, ok := b.Lookup(input.Keyboard(input.KeyUp))
	assert.False(t, ok)
	_, ok = b.Lookup(input.AxisPositive(0, input.AxisDPadY))
	assert.False(t, ok, "axis navigation follows the navigation switch")
	_, ok = b.Lookup(input.Button(0, input.ButtonSouth))
	assert.True(t, ok)

	b = bindings.DefaultWith(bindings.Options{DisableActivation: true})
	_, ok = b.Lookup(input.Button(0, input.ButtonSouth))
	assert.False(t, ok)
}

func TestBindReplacesAndRejects(t *testing.T) {
	b := bindings.Default()

	require.NoError(t, b.Bind(input.Keyboard(input.KeyUp), bindings.User(nextMenu)))
	cmd, ok := b.Lookup(input.Keyboard(input.KeyUp))
	require.True(t, ok)
	assert.Equal(t, bindings.CommandUser, cmd.Kind)

	err := b.Bind(input.Mouse(input.MouseLeft), bindings.Click)
	assert.ErrorIs(t, err, bindings.ErrNotBindable)
	err = b.Bind(input.AxisPositive(0, input.AxisRightZ), bindings.Click)
	assert.ErrorIs(t, err, bindings.ErrNotBindable)

	b.Unbind(input.Button(0, input.ButtonSouth))
	_, ok = b.Lookup(input.Button(2, input.ButtonSouth))
	assert.False(t, ok, "button bindings apply to every pad")
}

func TestResolvePressedSkipsUnbound(t *testing.T) {
	b := bindings.Default().
		WithKey(input.KeyPageDown, bindings.User(nextMenu)).
		WithGamepadButton(input.ButtonLeftTrigger, bindings.User(prevMenu))

	got := resolved(b,
		input.Keyboard(input.KeyA),
		input.Keyboard(input.KeyDown),
		input.Keyboard(input.KeyPageDown),
		input.Button(0, input.ButtonLeftTrigger),
	)
	require.Len(t, got, 3)
	assert.Equal(t, bindings.CommandNavigateDown, got[0].Command.Kind)
	assert.Equal(t, input.Keyboard(input.KeyDown), got[0].Origin)
	assert.Equal(t, bindings.CommandUser, got[1].Command.Kind)
	assert.Equal(t, bindings.CommandUser, got[2].Command.Kind)

	v, ok := bindings.Downcast[menuAction](got[2].Command.Payload())
	require.True(t, ok)
	assert.Equal(t, prevMenu, v)
}

func TestTriggerIdentity(t *testing.T) {
	up1 := bindings.Trigger{Command: bindings.NavigateUp, Origin: input.Keyboard(input.KeyUp)}
	up2 := bindings.Trigger{Command: bindings.NavigateUp, Origin: input.AxisPositive(0, input.AxisDPadY)}
	assert.Equal(t, up1.ID(), up2.ID(), "built-in commands share one trigger")

	u1 := bindings.Trigger{Command: bindings.User(nextMenu), Origin: input.Keyboard(input.KeyPageDown)}
	u2 := bindings.Trigger{Command: bindings.User(nextMenu), Origin: input.Button(0, input.ButtonRightTrigger)}
	assert.NotEqual(t, u1.ID(), u2.ID(), "user commands are keyed by their input")
}

func TestPayloadDowncast(t *testing.T) {
	p := bindings.User(nextMenu).Payload()

	v, ok := bindings.Downcast[menuAction](p)
	require.True(t, ok)
	assert.Equal(t, nextMenu, v)

	// a different expected type is no match, never a panic
	_, ok = bindings.Downcast[deleteAction](p)
	assert.False(t, ok)
	_, ok = bindings.Downcast[int](p)
	assert.False(t, ok)
	_, ok = bindings.Downcast[menuAction](nil)
	assert.False(t, ok)

	assert.Nil(t, bindings.Click.Payload())
}

type counter struct {
	hits *int
}

func (c counter) Clone() counter {
	n := *c.hits
	return counter{hits: &n}
}

func TestPayloadsAreFreshPerFire(t *testing.T) {
	n := 0
	cmd := bindings.User(counter{hits: &n})

	a, ok := bindings.Downcast[counter](cmd.Payload())
	require.True(t, ok)
	b, ok := bindings.Downcast[counter](cmd.Payload())
	require.True(t, ok)

	*a.hits = 5
	assert.Equal(t, 0, *b.hits, "two fires must not alias one payload")
	assert.Equal(t, 0, n)

	calls := 0
	fn := bindings.UserFunc(func() int { calls++; return calls })
	first, _ := bindings.Downcast[int](fn.Payload())
	second, _ := bindings.Downcast[int](fn.Payload())
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestNavigateRoundTrip(t *testing.T) {
	for _, d := range []domain.Direction{domain.DirectionUp, domain.DirectionDown, domain.DirectionLeft, domain.DirectionRight} {
		got, ok := bindings.Navigate(d).Direction()
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := bindings.Click.Direction()
	assert.False(t, ok)
}

func TestEntriesListsAxes(t *testing.T) {
	entries := bindings.Default().Entries()
	var names []string
	for _, e := range entries {
		names = append(names, e.Input)
	}
	assert.Contains(t, names, "Up")
	assert.Contains(t, names, "Pad*:South")
	assert.Contains(t, names, "Pad*:LeftStickY+")

	assert.Empty(t, bindings.Empty().Entries())
}
