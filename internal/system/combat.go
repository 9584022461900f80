// internal/system/combat.go
package system

import (
	"errors"
	"fmt"

	"github.com/gttkeith/gtt-sdef/internal/component"
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/internal/event"
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/internal/utils"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

var (
	ErrUnknownTower     = errors.New("unknown tower type")
	ErrInvalidPlacement = errors.New("invalid tower placement")
)

// Layout describes the screen areas the tower system needs to know about.
type Layout struct {
	Bounds         geom.Size   // air support leaves the map past these edges
	Panels         []geom.Rect // nothing can be built on UI panels
	BuyPanelHeight float64     // vertical air tracks start here
}

// DefaultLayout returns the layout of the standard window.
func DefaultLayout() Layout {
	return Layout{
		Bounds:         geom.Size{W: config.ScreenWidth, H: config.ScreenHeight},
		Panels:         config.Panels(),
		BuyPanelHeight: config.BuyPanelHeight,
	}
}

// CombatSystem управляет башнями: постройкой, наведением и стрельбой.
type CombatSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	rng             utils.RandomSource
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
	bombs           *AreaAttackSystem
	layout          Layout
	lane            []geom.Point

	// The next air support tower flies horizontally; toggled per placement.
	planeWillBeHorizontal bool

	// бомбы улетевших самолётов дожидаются взрыва здесь
	detached []DetachedBombs
}

// DetachedBombs are bombs whose plane has left the map. They keep the plane's
// damage and radius and explode on schedule.
type DetachedBombs struct {
	Owner types.EntityID
	DefID string
	Bombs []*component.Projectile
}

func NewCombatSystem(ecs *entity.ECS, catalog *defs.Catalog, rng utils.RandomSource, layout Layout, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:                   ecs,
		catalog:               catalog,
		rng:                   rng,
		eventDispatcher:       eventDispatcher,
		projectiles:           NewProjectileSystem(ecs, catalog),
		bombs:                 NewAreaAttackSystem(ecs),
		layout:                layout,
		planeWillBeHorizontal: true,
	}
}

// SetLane replaces the lane ground towers must keep clear of.
func (s *CombatSystem) SetLane(lane []geom.Point) {
	s.lane = lane
}

// PlaneWillBeHorizontal reports which track the next air support tower takes.
func (s *CombatSystem) PlaneWillBeHorizontal() bool {
	return s.planeWillBeHorizontal
}

// ValidPlacement reports whether a tower of the given type may be built with
// its footprint centred on pos. Air support only has to stay off the panels;
// ground towers must also avoid other towers and the lane.
func (s *CombatSystem) ValidPlacement(defID string, pos geom.Point) bool {
	def, ok := s.catalog.Tower(defID)
	if !ok {
		return false
	}
	box := geom.RectAt(pos, def.Footprint)
	if def.AirSupport {
		return !geom.CollidesAny(box, s.layout.Panels)
	}
	if geom.CollidesAny(box, s.layout.Panels) || geom.CollidesAny(box, s.towerBoxes()) {
		return false
	}
	return !geom.LaneBlocked(box, s.lane, config.LaneWidth)
}

func (s *CombatSystem) towerBoxes() []geom.Rect {
	towers := s.ecs.Towers()
	boxes := make([]geom.Rect, 0, len(towers))
	for _, t := range towers {
		size := config.TowerFootprint
		if def, ok := s.catalog.Tower(t.DefID); ok {
			size = def.Footprint
		}
		boxes = append(boxes, geom.RectAt(t.Position, size))
	}
	return boxes
}

// Place builds a tower. Funds are the caller's concern. Air support ignores
// one coordinate of pos and enters the map at the edge of its track.
func (s *CombatSystem) Place(defID string, pos geom.Point) (types.EntityID, error) {
	def, ok := s.catalog.Tower(defID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTower, defID)
	}
	if !s.ValidPlacement(defID, pos) {
		return 0, ErrInvalidPlacement
	}

	t := &component.Tower{
		ID:         s.ecs.NewEntity(),
		DefID:      defID,
		AirSupport: def.AirSupport,
	}
	t.Position = pos
	if def.AirSupport {
		t.Horizontal = s.planeWillBeHorizontal
		if t.Horizontal {
			t.Position = geom.Point{X: 0, Y: pos.Y}
			t.Rotation = config.SpriteRotationOffset
		} else {
			t.Position = geom.Point{X: pos.X, Y: s.layout.BuyPanelHeight}
			t.Rotation = 2 * config.SpriteRotationOffset
		}
		s.planeWillBeHorizontal = !s.planeWillBeHorizontal
	}
	s.resetAttackInterval(t, def)
	// a fresh tower may fire on its first update
	t.AttackProgress = t.AttackInterval

	s.ecs.AddTower(t)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: t.ID, DefID: t.DefID, Position: t.Position},
	})
	return t.ID, nil
}

// Reset removes every tower and pending bomb and puts the air support
// alternation back to its starting track.
func (s *CombatSystem) Reset() {
	s.ecs.ClearTowers()
	s.detached = nil
	s.planeWillBeHorizontal = true
}

// Detached returns the bombs still waiting after their plane was removed.
func (s *CombatSystem) Detached() []DetachedBombs {
	return s.detached
}

func (s *CombatSystem) resetAttackInterval(t *component.Tower, def defs.TowerDefinition) {
	t.AttackProgress = 0
	t.AttackInterval = s.rng.Uniform(def.IntervalFloor, def.IntervalCeil)
}

// Update advances every tower and the projectiles it owns. Air support that
// has left the map is removed after the pass; its pending bombs stay behind.
func (s *CombatSystem) Update(deltaTime float64) {
	s.updateDetached(deltaTime)

	toRemove := make(map[types.EntityID]bool)
	for _, t := range s.ecs.Towers() {
		def, ok := s.catalog.Tower(t.DefID)
		if !ok {
			continue
		}
		t.AttackProgress += deltaTime
		if def.AirSupport {
			if s.updateAirSupport(t, def, deltaTime) {
				toRemove[t.ID] = true
			}
			continue
		}
		s.updateGround(t, def, deltaTime)
	}

	for _, t := range s.ecs.Towers() {
		if toRemove[t.ID] {
			if len(t.Projectiles) > 0 {
				s.detached = append(s.detached, DetachedBombs{Owner: t.ID, DefID: t.DefID, Bombs: t.Projectiles})
				t.Projectiles = nil
			}
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TowerRemoved,
				Data: event.TowerData{ID: t.ID, DefID: t.DefID, Position: t.Position},
			})
		}
	}
	s.ecs.RemoveTowers(toRemove)
}

func (s *CombatSystem) updateDetached(deltaTime float64) {
	waiting := s.detached[:0]
	for _, d := range s.detached {
		def, ok := s.catalog.Tower(d.DefID)
		if !ok {
			continue
		}
		d.Bombs = s.bombs.Update(d.Bombs, def.AttackDamage, def.AttackRadius, deltaTime)
		if len(d.Bombs) > 0 {
			waiting = append(waiting, d)
		}
	}
	for i := len(waiting); i < len(s.detached); i++ {
		s.detached[i] = DetachedBombs{}
	}
	s.detached = waiting
}

func (s *CombatSystem) updateGround(t *component.Tower, def defs.TowerDefinition, deltaTime float64) {
	inRange := s.ecs.EnemiesWithinRange(t.Position, def.AttackRadius)
	if t.AttackProgress > t.AttackInterval && len(inRange) > 0 {
		target := inRange[0]
		s.resetAttackInterval(t, def)
		t.Projectiles = append(t.Projectiles, s.projectiles.Launch(target, t.Position))
		t.Rotation = utils.NormalizeAngle(geom.FacingAngle(t.Position, target.Position) + config.SpriteRotationOffset)
	}
	t.Projectiles = s.projectiles.Update(t.Projectiles, def.AttackDamage, deltaTime)
}

// updateAirSupport flies the plane along its track and handles its bombs.
// It reports whether the plane has left the map.
func (s *CombatSystem) updateAirSupport(t *component.Tower, def defs.TowerDefinition, deltaTime float64) bool {
	if t.Horizontal {
		t.Position.X += config.AirplaneSpeed * deltaTime
	} else {
		t.Position.Y += config.AirplaneSpeed * deltaTime
	}
	gone := t.Position.X > s.layout.Bounds.W || t.Position.Y > s.layout.Bounds.H

	if t.AttackProgress > t.AttackInterval {
		s.resetAttackInterval(t, def)
		t.Projectiles = append(t.Projectiles, s.bombs.Drop(t.Position))
	}
	t.Projectiles = s.bombs.Update(t.Projectiles, def.AttackDamage, def.AttackRadius, deltaTime)
	return gone
}
