// internal/component/wave.go
package component

import "github.com/gttkeith/gtt-sdef/internal/defs"

// Wave — состояние проигрывания одной волны.
type Wave struct {
	Number    int
	Events    []defs.EventDefinition
	Phase     int     // индекс активного события
	Intervals float64 // интервалы, прошедшие в текущем событии
	Progress  float64 // прогресс до следующего спавна/конца паузы
	Spawned   int     // шаги, отработанные в текущем событии
}

// NewWave starts a wave at its first event. Every event's first step is due
// immediately.
func NewWave(number int, events []defs.EventDefinition) *Wave {
	return &Wave{Number: number, Events: events, Progress: 1.0}
}

// NextPhase moves on to the following event and rearms its first step.
func (w *Wave) NextPhase() {
	w.Phase++
	w.Intervals = 0
	w.Progress = 1.0
	w.Spawned = 0
}

// Complete reports whether every event has run.
func (w *Wave) Complete() bool {
	return w == nil || w.Phase >= len(w.Events)
}

// Current returns the active event. Only valid while the wave is not complete.
func (w *Wave) Current() defs.EventDefinition {
	return w.Events[w.Phase]
}
