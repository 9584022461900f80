// internal/defs/enemies.go
package defs

import "github.com/gttkeith/gtt-sdef/pkg/geom"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID         string
	Name       string
	Sprite     string
	MaxHealth  int
	Reward     int // money granted on death
	Penalty    int // lives lost when the enemy reaches the end of the lane
	Speed      float64
	ChildType  string // empty when the enemy splits into nothing
	ChildCount int
	Footprint  geom.Size
}

// HasChildren reports whether the enemy spawns anything on death.
func (d EnemyDefinition) HasChildren() bool {
	return d.ChildType != "" && d.ChildCount > 0
}
