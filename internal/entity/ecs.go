// internal/entity/ecs.go
package entity

import (
	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// ECS owns every live entity of one simulation. Enemies and towers are kept
// in insertion order; the maps index the same pointers by ID.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	enemies    []*component.Enemy
	enemyIndex map[types.EntityID]*component.Enemy
	towers     []*component.Tower
	towerIndex map[types.EntityID]*component.Tower

	Player *component.PlayerState
	Wave   *component.Wave
	Status component.Status
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		enemyIndex: make(map[types.EntityID]*component.Enemy),
		towerIndex: make(map[types.EntityID]*component.Tower),
		Player: &component.PlayerState{
			Money: config.StartingMoney,
			Lives: config.StartingLives,
		},
		Wave: component.NewWave(0, nil),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy appends e to the end of the registry.
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.enemies = append(ecs.enemies, e)
	ecs.enemyIndex[e.ID] = e
}

// Enemy returns the live enemy with the given ID.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// Enemies returns the live enemies in registry order. The slice must not be
// modified by the caller.
func (ecs *ECS) Enemies() []*component.Enemy {
	return ecs.enemies
}

func (ecs *ECS) CountEnemies() int {
	return len(ecs.enemies)
}

// RemoveEnemies drops the given enemies and keeps the order of the rest.
func (ecs *ECS) RemoveEnemies(ids map[types.EntityID]bool) {
	if len(ids) == 0 {
		return
	}
	kept := ecs.enemies[:0]
	for _, e := range ecs.enemies {
		if ids[e.ID] {
			delete(ecs.enemyIndex, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(ecs.enemies); i++ {
		ecs.enemies[i] = nil
	}
	ecs.enemies = kept
}

// EnemiesWithinRange returns the enemies strictly closer than radius to p,
// in registry order.
func (ecs *ECS) EnemiesWithinRange(p geom.Point, radius float64) []*component.Enemy {
	var result []*component.Enemy
	for _, e := range ecs.enemies {
		if geom.Distance(e.Position, p) < radius {
			result = append(result, e)
		}
	}
	return result
}

// AddTower appends t to the end of the registry.
func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.towers = append(ecs.towers, t)
	ecs.towerIndex[t.ID] = t
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.towerIndex[id]
	return t, ok
}

// Towers returns the live towers in placement order.
func (ecs *ECS) Towers() []*component.Tower {
	return ecs.towers
}

// RemoveTowers drops the given towers and keeps the order of the rest.
func (ecs *ECS) RemoveTowers(ids map[types.EntityID]bool) {
	if len(ids) == 0 {
		return
	}
	kept := ecs.towers[:0]
	for _, t := range ecs.towers {
		if ids[t.ID] {
			delete(ecs.towerIndex, t.ID)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(ecs.towers); i++ {
		ecs.towers[i] = nil
	}
	ecs.towers = kept
}

// ClearTowers removes every tower along with its projectiles.
func (ecs *ECS) ClearTowers() {
	ecs.towers = nil
	ecs.towerIndex = make(map[types.EntityID]*component.Tower)
}

// ClearEnemies removes every enemy.
func (ecs *ECS) ClearEnemies() {
	ecs.enemies = nil
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
}
