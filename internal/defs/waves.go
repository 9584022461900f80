// internal/defs/waves.go
package defs

// EventKind discriminates the actions a wave can schedule.
type EventKind string

const (
	EventSpawn EventKind = "spawn"
	EventDelay EventKind = "delay"
)

// EventDefinition is one step of a wave: spawn Count enemies Interval seconds
// apart, or wait Interval seconds once.
type EventDefinition struct {
	Kind     EventKind
	Count    int
	EnemyID  string
	Interval float64 // seconds
}

// WaveDefinition is the ordered list of events for one wave of a level.
type WaveDefinition struct {
	Index  int
	Events []EventDefinition
}
