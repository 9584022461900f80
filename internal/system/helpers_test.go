package system

import (
	"testing"

	"github.com/gttkeith/gtt-sdef/internal/defs"
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/internal/event"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// lowRandom always returns the bottom of the requested range.
type lowRandom struct {
	calls int
}

func (r *lowRandom) Uniform(lo, hi float64) float64 {
	r.calls++
	return lo
}

var testLane = []geom.Point{{X: 0, Y: 400}, {X: 1024, Y: 400}}

func testLayout() Layout {
	return Layout{
		Bounds:         geom.Size{W: 1024, H: 768},
		Panels:         []geom.Rect{{X: 0, Y: 0, W: 1024, H: 100}},
		BuyPanelHeight: 100,
	}
}

func testCatalog(t *testing.T) *defs.Catalog {
	t.Helper()
	enemyBox := geom.Size{W: 40, H: 40}
	enemies := []defs.EnemyDefinition{
		{ID: "slicer", MaxHealth: 1, Reward: 2, Penalty: 1, Speed: 100, Footprint: enemyBox},
		{ID: "super", MaxHealth: 1, Reward: 15, Penalty: 2, Speed: 100, ChildType: "slicer", ChildCount: 2, Footprint: enemyBox},
		{ID: "tough", MaxHealth: 10, Reward: 5, Penalty: 30, Speed: 1, Footprint: enemyBox},
	}
	towers := []defs.TowerDefinition{
		{ID: "tank", Cost: 250, AttackDamage: 1, IntervalFloor: 1, IntervalCeil: 2, AttackRadius: 100, Footprint: geom.Size{W: 50, H: 50}},
		{ID: "air", Cost: 500, AttackDamage: 5, IntervalFloor: 1, IntervalCeil: 1, AttackRadius: 200, AirSupport: true, Footprint: geom.Size{W: 60, H: 60}},
	}
	c, err := defs.NewCatalog(enemies, towers)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return c
}

type fixture struct {
	ecs     *entity.ECS
	player  *PlayerSystem
	enemies *EnemySystem
	combat  *CombatSystem
	rng     *lowRandom
	events  *event.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog := testCatalog(t)
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	player := NewPlayerSystem(ecs)
	rng := &lowRandom{}
	f := &fixture{
		ecs:     ecs,
		player:  player,
		enemies: NewEnemySystem(ecs, catalog, player, events),
		combat:  NewCombatSystem(ecs, catalog, rng, testLayout(), events),
		rng:     rng,
		events:  events,
	}
	f.combat.SetLane(testLane)
	return f
}
