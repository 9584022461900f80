// internal/component/projectile.go
package component

import (
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// Projectile представляет летящий снаряд или сброшенную бомбу.
type Projectile struct {
	TargetID types.EntityID // 0 — бомба без цели
	LastSeen geom.Point     // последняя известная позиция цели
	AliveFor float64
	Body
}

// Homing reports whether the projectile chases a specific enemy.
func (p *Projectile) Homing() bool { return p.TargetID != 0 }
