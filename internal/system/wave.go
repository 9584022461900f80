// internal/system/wave.go
package system

import (
	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/interfaces"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// WaveSystem проигрывает события волны и запрашивает спавн врагов.
type WaveSystem struct {
	spawner interfaces.EnemySpawner
}

func NewWaveSystem(spawner interfaces.EnemySpawner) *WaveSystem {
	return &WaveSystem{spawner: spawner}
}

// Update advances the active event of wave by deltaTime. A spawn event
// spawns Count enemies on lane, the first at once and the rest Interval
// apart; the overshoot of each step carries into the next one. Once Count intervals have passed the wave moves
// on to its next event.
func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave, lane []geom.Point) {
	if wave.Complete() {
		return
	}
	ev := wave.Current()
	step := deltaTime / ev.Interval
	wave.Progress += step
	wave.Intervals += step

	for wave.Progress >= 1.0 && wave.Spawned < ev.Count {
		wave.Progress -= 1.0
		wave.Spawned++
		if ev.Kind == defs.EventSpawn {
			s.spawner.Spawn(ev.EnemyID, lane)
		}
	}
	if wave.Intervals >= float64(ev.Count) {
		wave.NextPhase()
	}
}

// CompletionReward is the money granted for finishing wave number n.
func CompletionReward(n int) int {
	if n == 0 {
		return 0
	}
	return config.WaveRewardBase + config.WaveRewardMultiplier*n
}
