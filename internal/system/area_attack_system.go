// internal/system/area_attack_system.go
package system

import (
	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// AreaAttackSystem управляет бомбами авиаподдержки, которые наносят урон по области.
type AreaAttackSystem struct {
	ecs *entity.ECS
}

func NewAreaAttackSystem(ecs *entity.ECS) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs}
}

// Drop leaves a bomb at pos. Bombs do not move.
func (s *AreaAttackSystem) Drop(pos geom.Point) *component.Projectile {
	p := &component.Projectile{}
	p.Position = pos
	return p
}

// Update ages every bomb. A bomb older than the explode delay damages every
// enemy within radius of where it lies and is removed. Returns the bombs
// still waiting.
func (s *AreaAttackSystem) Update(bombs []*component.Projectile, damage int, radius, deltaTime float64) []*component.Projectile {
	waiting := bombs[:0]
	for _, b := range bombs {
		b.AliveFor += deltaTime
		if b.AliveFor <= config.BombExplodeDelay {
			waiting = append(waiting, b)
			continue
		}
		for _, e := range s.ecs.EnemiesWithinRange(b.Position, radius) {
			ApplyDamage(s.ecs, e.ID, damage)
		}
	}
	for i := len(waiting); i < len(bombs); i++ {
		bombs[i] = nil
	}
	return waiting
}
