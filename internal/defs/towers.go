// internal/defs/towers.go
package defs

import "github.com/gttkeith/gtt-sdef/pkg/geom"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID            string
	Name          string
	Sprite        string
	AttackSprite  string
	Cost          int
	AttackDamage  int
	IntervalFloor float64 // seconds
	IntervalCeil  float64 // seconds
	AttackRadius  float64
	AirSupport    bool // flies a fixed track and drops bombs instead of aiming
	Footprint     geom.Size
}
