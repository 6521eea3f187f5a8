package sound

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestPlayer(enabled bool) (*Player, *bytes.Buffer, *time.Time) {
	var buf bytes.Buffer
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(&buf, enabled)
	p.now = func() time.Time { return clock }
	return p, &buf, &clock
}

func TestAudibleCuesRingTheBell(t *testing.T) {
	p, buf, clock := newTestPlayer(true)

	assert.True(t, p.Play(Click))
	*clock = clock.Add(time.Second)
	assert.True(t, p.Play(Whoosh))
	assert.Equal(t, "\a\a", buf.String())
}

func TestHoverIsSilent(t *testing.T) {
	p, buf, _ := newTestPlayer(true)
	assert.False(t, p.Play(Hover))
	assert.False(t, p.Play(Cue("unknown")))
	assert.Empty(t, buf.String())
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, buf, clock := newTestPlayer(false)
	assert.False(t, p.Play(Click))

	p.SetEnabled(true)
	assert.True(t, p.Enabled())
	*clock = clock.Add(time.Second)
	assert.True(t, p.Play(Click))
	assert.Equal(t, "\a", buf.String())
}

func TestRapidCuesAreThrottled(t *testing.T) {
	p, buf, clock := newTestPlayer(true)

	assert.True(t, p.Play(Click))
	*clock = clock.Add(10 * time.Millisecond)
	assert.False(t, p.Play(Click))
	*clock = clock.Add(minInterval)
	assert.True(t, p.Play(Click))
	assert.Equal(t, "\a\a", buf.String())
}

func TestVolumes(t *testing.T) {
	assert.Greater(t, Click.Volume(), Whoosh.Volume())
	assert.Greater(t, Whoosh.Volume(), Hover.Volume())
}
