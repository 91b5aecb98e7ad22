package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func set(keys ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

const frame = 16 * time.Millisecond

func TestPressFiresOnceUntilFirstDelay(t *testing.T) {
	r := NewRepeater[string]()

	got := r.Tick(set("up"), DefaultFirstDelay, DefaultRepeatInterval, 0)
	assert.Equal(t, set("up"), got)

	fired := 0
	for now := frame; now < DefaultFirstDelay; now += frame {
		fired += len(r.Tick(set("up"), DefaultFirstDelay, DefaultRepeatInterval, now))
	}
	assert.Zero(t, fired, "held key must stay quiet before the first delay")
}

func TestHoldRepeatsNoFasterThanInterval(t *testing.T) {
	r := NewRepeater[string]()
	r.Tick(set("down"), DefaultFirstDelay, DefaultRepeatInterval, 0)

	var fires []time.Duration
	for now := frame; now <= 2*time.Second; now += frame {
		if len(r.Tick(set("down"), DefaultFirstDelay, DefaultRepeatInterval, now)) > 0 {
			fires = append(fires, now)
		}
	}
	if assert.NotEmpty(t, fires) {
		assert.GreaterOrEqual(t, fires[0], DefaultFirstDelay)
	}
	for i := 1; i < len(fires); i++ {
		assert.GreaterOrEqual(t, fires[i]-fires[i-1], DefaultRepeatInterval)
	}
}

func TestEveryPressEdgeFires(t *testing.T) {
	r := NewRepeater[string]()
	now := time.Duration(0)
	presses := 0
	for i := 0; i < 5; i++ {
		presses += len(r.Tick(set("left"), DefaultFirstDelay, DefaultRepeatInterval, now))
		now += frame
		r.Tick(set(), DefaultFirstDelay, DefaultRepeatInterval, now)
		now += frame
	}
	assert.Equal(t, 5, presses)
}

func TestNewKeyResetsDelayAndMutesHeld(t *testing.T) {
	r := NewRepeater[string]()
	r.Tick(set("up"), DefaultFirstDelay, DefaultRepeatInterval, 0)

	// a second key arrives while the first is held past its delay
	got := r.Tick(set("up", "right"), DefaultFirstDelay, DefaultRepeatInterval, time.Second)
	assert.Equal(t, set("right"), got)

	got = r.Tick(set("up", "right"), DefaultFirstDelay, DefaultRepeatInterval, time.Second+frame)
	assert.Empty(t, got)

	got = r.Tick(set("up", "right"), DefaultFirstDelay, DefaultRepeatInterval, time.Second+DefaultFirstDelay)
	assert.Equal(t, set("up", "right"), got)
}

func TestReleaseDoesNotResetTimer(t *testing.T) {
	r := NewRepeater[string]()
	r.Tick(set("a", "b"), DefaultFirstDelay, DefaultRepeatInterval, 0)
	r.Tick(set("a"), DefaultFirstDelay, DefaultRepeatInterval, 100*time.Millisecond)

	got := r.Tick(set("a"), DefaultFirstDelay, DefaultRepeatInterval, DefaultFirstDelay)
	assert.Equal(t, set("a"), got)
}

func TestSuppressHeldUntilRelease(t *testing.T) {
	r := NewRepeater[string]()
	r.Tick(set("enter"), DefaultFirstDelay, DefaultRepeatInterval, 0)
	r.SuppressHeld()
	assert.True(t, r.Suppressed("enter"))

	// still held, even long after the delay: nothing fires
	got := r.Tick(set("enter"), DefaultFirstDelay, DefaultRepeatInterval, 5*time.Second)
	assert.Empty(t, got)
	assert.True(t, r.Held("enter"))

	r.Tick(set(), DefaultFirstDelay, DefaultRepeatInterval, 6*time.Second)
	assert.False(t, r.Suppressed("enter"))

	got = r.Tick(set("enter"), DefaultFirstDelay, DefaultRepeatInterval, 7*time.Second)
	assert.Equal(t, set("enter"), got)
}
