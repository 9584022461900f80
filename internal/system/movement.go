// internal/system/movement.go
package system

import (
	"log"

	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/internal/event"
	"github.com/gttkeith/gtt-sdef/internal/interfaces"
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// EnemySystem спавнит врагов, двигает их по дорожке и обрабатывает смерть
// и выход к концу пути.
type EnemySystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	economy         interfaces.Economy
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, catalog *defs.Catalog, economy interfaces.Economy, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		catalog:         catalog,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn adds an enemy at the first waypoint of path. The path is copied and
// its first point is the enemy's initial target. Returns 0 for unknown types.
func (s *EnemySystem) Spawn(defID string, path []geom.Point) types.EntityID {
	var start geom.Point
	if len(path) > 0 {
		start = path[0]
	}
	return s.SpawnAt(defID, path, start)
}

// SpawnAt adds an enemy at an explicit position, e.g. a child at its parent's
// place of death.
func (s *EnemySystem) SpawnAt(defID string, path []geom.Point, pos geom.Point) types.EntityID {
	e := s.newEnemy(defID, component.Path{Points: path}.Clone(), pos)
	if e == nil {
		return 0
	}
	s.ecs.AddEnemy(e)
	s.dispatch(event.EnemySpawned, e, 0)
	return e.ID
}

func (s *EnemySystem) newEnemy(defID string, path component.Path, pos geom.Point) *component.Enemy {
	def, ok := s.catalog.Enemy(defID)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", defID)
		return nil
	}
	e := &component.Enemy{
		ID:     s.ecs.NewEntity(),
		DefID:  defID,
		Health: def.MaxHealth,
		Path:   path,
	}
	e.Position = pos
	return e
}

// Damage subtracts health from an enemy. Death is only noticed by the next Update.
func (s *EnemySystem) Damage(id types.EntityID, amount int) {
	ApplyDamage(s.ecs, id, amount)
}

// WithinRange returns the IDs of enemies strictly closer than radius to p, in
// registry order.
func (s *EnemySystem) WithinRange(p geom.Point, radius float64) []types.EntityID {
	enemies := s.ecs.EnemiesWithinRange(p, radius)
	ids := make([]types.EntityID, 0, len(enemies))
	for _, e := range enemies {
		ids = append(ids, e.ID)
	}
	return ids
}

func (s *EnemySystem) Count() int {
	return s.ecs.CountEnemies()
}

// Update resolves every enemy once, in registry order. Dead enemies pay out
// and split into children, enemies at the end of the lane cost lives, the
// rest walk. Removals and children are applied after the pass.
func (s *EnemySystem) Update(deltaTime float64) {
	toRemove := make(map[types.EntityID]bool)
	var toAdd []*component.Enemy

	for _, e := range s.ecs.Enemies() {
		def, ok := s.catalog.Enemy(e.DefID)
		if !ok {
			toRemove[e.ID] = true
			continue
		}
		switch {
		case !e.Alive():
			s.economy.Reward(def.Reward)
			s.dispatch(event.EnemyKilled, e, def.Reward)
			if def.HasChildren() {
				for i := 0; i < def.ChildCount; i++ {
					if child := s.newEnemy(def.ChildType, e.Path.Clone(), e.Position); child != nil {
						toAdd = append(toAdd, child)
					}
				}
			}
			toRemove[e.ID] = true
		case e.ReachedEnd():
			s.economy.Penalize(def.Penalty)
			s.dispatch(event.EnemyEscaped, e, def.Penalty)
			toRemove[e.ID] = true
		default:
			s.move(e, def.Speed*deltaTime)
		}
	}

	s.ecs.RemoveEnemies(toRemove)
	for _, child := range toAdd {
		s.ecs.AddEnemy(child)
		s.dispatch(event.EnemySpawned, child, 0)
	}
}

// move advances an enemy towards its current waypoint, dropping the waypoint
// once it has been reached.
func (s *EnemySystem) move(e *component.Enemy, dist float64) {
	cur := e.Position
	if e.Path.Target(cur) == cur {
		e.Path.Pop()
	}
	target := e.Path.Target(cur)
	e.Position = geom.StepToward(cur, target, dist)
	if target != cur {
		e.Rotation = geom.FacingAngle(cur, target)
	}
}

func (s *EnemySystem) dispatch(t event.EventType, e *component.Enemy, amount int) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.EnemyData{ID: e.ID, DefID: e.DefID, Position: e.Position, Amount: amount},
	})
}
