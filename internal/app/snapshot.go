// internal/app/snapshot.go
package app

import (
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// EntityView is a read-only copy of an enemy or tower for drawing.
type EntityView struct {
	ID       types.EntityID
	DefID    string
	Position geom.Point
	Rotation float64
	Box      geom.Rect
}

// ProjectileView is a read-only copy of a projectile or bomb.
type ProjectileView struct {
	Owner    types.EntityID
	Position geom.Point
	Rotation float64
	Bomb     bool
}

// Snapshot — всё, что нужно отрисовать за кадр.
type Snapshot struct {
	Enemies     []EntityView
	Towers      []EntityView
	Projectiles []ProjectileView
}

// Snapshot copies the live entities in registry order.
func (g *Game) Snapshot() Snapshot {
	enemies := g.ECS.Enemies()
	towers := g.ECS.Towers()
	s := Snapshot{
		Enemies: make([]EntityView, 0, len(enemies)),
		Towers:  make([]EntityView, 0, len(towers)),
	}
	for _, e := range enemies {
		size := config.EnemyFootprint
		if def, ok := g.Catalog.Enemy(e.DefID); ok {
			size = def.Footprint
		}
		s.Enemies = append(s.Enemies, EntityView{
			ID:       e.ID,
			DefID:    e.DefID,
			Position: e.Position,
			Rotation: e.Rotation,
			Box:      geom.RectAt(e.Position, size),
		})
	}
	for _, t := range towers {
		size := config.TowerFootprint
		if def, ok := g.Catalog.Tower(t.DefID); ok {
			size = def.Footprint
		}
		s.Towers = append(s.Towers, EntityView{
			ID:       t.ID,
			DefID:    t.DefID,
			Position: t.Position,
			Rotation: t.Rotation,
			Box:      geom.RectAt(t.Position, size),
		})
		for _, p := range t.Projectiles {
			s.Projectiles = append(s.Projectiles, ProjectileView{
				Owner:    t.ID,
				Position: p.Position,
				Rotation: p.Rotation,
				Bomb:     !p.Homing(),
			})
		}
	}
	for _, d := range g.CombatSystem.Detached() {
		for _, p := range d.Bombs {
			s.Projectiles = append(s.Projectiles, ProjectileView{
				Owner:    d.Owner,
				Position: p.Position,
				Rotation: p.Rotation,
				Bomb:     true,
			})
		}
	}
	return s
}
