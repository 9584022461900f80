// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/gttkeith/gtt-sdef/internal/event"
)

// Cue — короткий звуковой сигнал игрового события.
type Cue int

const (
	CueEnemyKilled Cue = iota
	CueEnemyEscaped
	CueTowerPlaced
	CueWaveStarted
	CueWaveCompleted
	CueGameWon
	CueGameLost
)

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueEnemyKilled:   {{880, 40 * time.Millisecond}},
	CueEnemyEscaped:  {{220, 120 * time.Millisecond}},
	CueTowerPlaced:   {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}},
	CueWaveStarted:   {{392, 100 * time.Millisecond}, {523.25, 150 * time.Millisecond}},
	CueWaveCompleted: {{659.25, 80 * time.Millisecond}, {783.99, 80 * time.Millisecond}, {1046.5, 160 * time.Millisecond}},
	CueGameWon:       {{523.25, 150 * time.Millisecond}, {659.25, 150 * time.Millisecond}, {783.99, 150 * time.Millisecond}, {1046.5, 400 * time.Millisecond}},
	CueGameLost:      {{392, 200 * time.Millisecond}, {311.13, 200 * time.Millisecond}, {261.63, 500 * time.Millisecond}},
}

// CueFor maps a simulation event to the cue played for it.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.EnemyKilled:
		return CueEnemyKilled, true
	case event.EnemyEscaped:
		return CueEnemyEscaped, true
	case event.TowerPlaced:
		return CueTowerPlaced, true
	case event.WaveStarted:
		return CueWaveStarted, true
	case event.WaveCompleted:
		return CueWaveCompleted, true
	case event.GameWon:
		return CueGameWon, true
	case event.GameLost:
		return CueGameLost, true
	}
	return 0, false
}

// Duration is how long a cue plays.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.duration
	}
	return d
}

// Build renders a cue as a finite streamer of sine notes played one after
// another at the given volume (0..1).
func Build(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", c, err)
		}
		parts = append(parts, beep.Take(rate.N(n.duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is made silent instead
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
