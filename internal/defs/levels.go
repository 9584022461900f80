// internal/defs/levels.go
package defs

import "github.com/gttkeith/gtt-sdef/pkg/geom"

// LevelDefinition is a playable map: the lane enemies walk and the waves
// sent down it, ordered by wave index.
type LevelDefinition struct {
	Number  int
	MapPath string
	Lane    []geom.Point
	Waves   []WaveDefinition
}
