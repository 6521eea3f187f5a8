// Package sound plays menu feedback cues as terminal bells.
package sound

import (
	"io"
	"os"
	"sync"
	"time"
)

// Cue is a kind of interface feedback.
type Cue string

const (
	Click  Cue = "click"
	Hover  Cue = "hover"
	Whoosh Cue = "whoosh"
)

// Volume is the relative loudness of c, from 0 to 1.
func (c Cue) Volume() float64 {
	switch c {
	case Click:
		return 0.4
	case Whoosh:
		return 0.3
	case Hover:
		return 0.2
	default:
		return 0
	}
}

// audibleVolume is the quietest cue that rings the bell.
const audibleVolume = 0.3

// bell is BEL; the terminal decides whether it beeps or flashes.
const bell = "\a"

// minInterval keeps rapid key repeats from producing a bell storm.
const minInterval = 80 * time.Millisecond

// Player rings the bell for audible cues while enabled.
type Player struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	last    time.Time
	now     func() time.Time
}

// NewPlayer creates a Player writing to out; nil means os.Stderr.
func NewPlayer(out io.Writer, enabled bool) *Player {
	if out == nil {
		out = os.Stderr
	}
	return &Player{out: out, enabled: enabled, now: time.Now}
}

// SetEnabled turns playback on or off.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Enabled reports whether playback is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play emits c and reports whether anything was written. Write errors are ignored.
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled || c.Volume() < audibleVolume {
		return false
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < minInterval {
		return false
	}
	p.last = now
	_, _ = io.WriteString(p.out, bell)
	return true
}
