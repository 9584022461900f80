// internal/system/projectile.go
package system

import (
	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// ProjectileSystem ведёт самонаводящиеся снаряды наземных башен.
type ProjectileSystem struct {
	ecs     *entity.ECS
	catalog *defs.Catalog
}

func NewProjectileSystem(ecs *entity.ECS, catalog *defs.Catalog) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, catalog: catalog}
}

// Launch creates a projectile at from, bound to target.
func (s *ProjectileSystem) Launch(target *component.Enemy, from geom.Point) *component.Projectile {
	p := &component.Projectile{TargetID: target.ID, LastSeen: target.Position}
	p.Position = from
	return p
}

// Update moves each projectile towards its target and applies damage on
// contact. It returns the projectiles that are still in flight.
//
// A projectile whose target has already been removed keeps flying to where
// the target was last seen and disappears there without effect.
func (s *ProjectileSystem) Update(projectiles []*component.Projectile, damage int, deltaTime float64) []*component.Projectile {
	active := projectiles[:0]
	for _, p := range projectiles {
		p.AliveFor += deltaTime
		target, alive := s.ecs.Enemy(p.TargetID)
		if alive {
			p.LastSeen = target.Position
		}
		p.Position = geom.StepToward(p.Position, p.LastSeen, config.ProjectileSpeed*deltaTime)
		p.Rotation = geom.FacingAngle(p.Position, p.LastSeen)

		if !alive {
			if p.Position != p.LastSeen {
				active = append(active, p)
			}
			continue
		}
		if s.hits(p, target) {
			ApplyDamage(s.ecs, target.ID, damage)
			continue
		}
		active = append(active, p)
	}
	for i := len(active); i < len(projectiles); i++ {
		projectiles[i] = nil
	}
	return active
}

func (s *ProjectileSystem) hits(p *component.Projectile, target *component.Enemy) bool {
	size := config.EnemyFootprint
	if def, ok := s.catalog.Enemy(target.DefID); ok {
		size = def.Footprint
	}
	return geom.Overlap(
		geom.RectAt(p.Position, config.ProjectileFootprint),
		geom.RectAt(target.Position, size),
	)
}
