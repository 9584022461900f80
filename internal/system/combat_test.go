package system

import (
	"errors"
	"math"
	"testing"

	"github.com/gttkeith/gtt-sdef/internal/event"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

func TestGroundPlacementRules(t *testing.T) {
	f := newFixture(t)

	if _, err := f.combat.Place("tank", geom.Point{X: 500, Y: 250}); err != nil {
		t.Fatalf("expected first tower to be accepted, got %v", err)
	}

	cases := []struct {
		name string
		pos  geom.Point
		want error
	}{
		{"accepted", geom.Point{X: 200, Y: 250}, nil},
		{"touching an existing tower", geom.Point{X: 550, Y: 250}, nil},
		{"overlapping a tower", geom.Point{X: 520, Y: 260}, ErrInvalidPlacement},
		{"overlapping a panel", geom.Point{X: 800, Y: 90}, ErrInvalidPlacement},
		{"overlapping the lane", geom.Point{X: 300, Y: 380}, ErrInvalidPlacement},
	}
	for _, tc := range cases {
		_, err := f.combat.Place("tank", tc.pos)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if n := len(f.ecs.Towers()); n != 3 {
		t.Errorf("expected 3 towers, got %d", n)
	}

	if _, err := f.combat.Place("nope", geom.Point{X: 200, Y: 600}); !errors.Is(err, ErrUnknownTower) {
		t.Errorf("expected ErrUnknownTower, got %v", err)
	}
}

func TestAirSupportPlacementAlternates(t *testing.T) {
	f := newFixture(t)

	// air support flies over towers and the lane
	f.combat.Place("tank", geom.Point{X: 300, Y: 250})
	if !f.combat.ValidPlacement("air", geom.Point{X: 300, Y: 400}) {
		t.Error("expected air support to ignore the lane and towers")
	}
	if f.combat.ValidPlacement("air", geom.Point{X: 300, Y: 50}) {
		t.Error("expected air support to respect panels")
	}

	first, err := f.combat.Place("air", geom.Point{X: 300, Y: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.combat.Place("air", geom.Point{X: 700, Y: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := f.ecs.Tower(first)
	b, _ := f.ecs.Tower(second)
	if !a.Horizontal || a.Position != (geom.Point{X: 0, Y: 500}) {
		t.Errorf("expected first plane on the horizontal track at (0,500), got %v horizontal=%v", a.Position, a.Horizontal)
	}
	if b.Horizontal || b.Position != (geom.Point{X: 700, Y: 100}) {
		t.Errorf("expected second plane on the vertical track at (700,100), got %v horizontal=%v", b.Position, b.Horizontal)
	}
	if !f.combat.PlaneWillBeHorizontal() {
		t.Error("expected the next plane to be horizontal again")
	}
}

func TestGroundTowerFiresAtFirstEnemyInRange(t *testing.T) {
	f := newFixture(t)
	tid, _ := f.combat.Place("tank", geom.Point{X: 200, Y: 250})
	tower, _ := f.ecs.Tower(tid)

	far := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 900, Y: 250})
	first := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 250, Y: 250})
	second := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 200, Y: 300})
	_ = far

	f.combat.Update(0.01)
	if tower.AttackProgress != 0 {
		t.Errorf("expected attack progress reset on firing, got %f", tower.AttackProgress)
	}
	if tower.AttackInterval < 1 || tower.AttackInterval > 2 {
		t.Errorf("expected interval within [1, 2], got %f", tower.AttackInterval)
	}
	if len(tower.Projectiles) != 1 || tower.Projectiles[0].TargetID != first {
		t.Fatalf("expected one projectile at the first enemy in range")
	}
	if math.Abs(tower.Rotation-math.Pi/2) > 1e-9 {
		t.Errorf("expected tower facing +x plus the sprite offset, got %f", tower.Rotation)
	}

	f.combat.Update(0.05)
	if len(tower.Projectiles) != 0 {
		t.Errorf("expected projectile to hit and disappear, %d left", len(tower.Projectiles))
	}
	e1, _ := f.ecs.Enemy(first)
	e2, _ := f.ecs.Enemy(second)
	if e1.Health != 9 {
		t.Errorf("expected first enemy at 9 health, got %d", e1.Health)
	}
	if e2.Health != 10 {
		t.Errorf("expected second enemy untouched, got %d", e2.Health)
	}
}

func TestGroundTowerHoldsFireWithoutTargets(t *testing.T) {
	f := newFixture(t)
	tid, _ := f.combat.Place("tank", geom.Point{X: 200, Y: 250})
	tower, _ := f.ecs.Tower(tid)
	start := tower.AttackProgress

	f.combat.Update(0.5)
	if len(tower.Projectiles) != 0 {
		t.Error("expected no projectiles without enemies")
	}
	if tower.AttackProgress != start+0.5 {
		t.Errorf("expected progress to keep accumulating, got %f", tower.AttackProgress)
	}
}

func TestProjectileOutlivesItsTarget(t *testing.T) {
	f := newFixture(t)
	tid, _ := f.combat.Place("tank", geom.Point{X: 200, Y: 250})
	tower, _ := f.ecs.Tower(tid)
	id := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 290, Y: 250})

	f.combat.Update(0.01)
	f.ecs.ClearEnemies()
	if len(tower.Projectiles) != 1 {
		t.Fatal("expected a projectile in flight")
	}

	f.combat.Update(0.2)
	if len(tower.Projectiles) != 0 {
		t.Error("expected projectile to fizzle at the target's last position")
	}
	_ = id
}

func TestAirSupportBombsAndLeaves(t *testing.T) {
	f := newFixture(t)
	var removed int
	f.events.Subscribe(event.TowerRemoved, event.ListenerFunc(func(e event.Event) { removed++ }))

	tid, _ := f.combat.Place("air", geom.Point{X: 300, Y: 500})
	plane, _ := f.ecs.Tower(tid)
	target := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 20, Y: 500})
	bystander := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 20, Y: 750})

	f.combat.Update(0.01)
	if len(plane.Projectiles) != 1 || plane.Projectiles[0].Homing() {
		t.Fatalf("expected one bomb dropped, got %d", len(plane.Projectiles))
	}
	bombPos := plane.Projectiles[0].Position
	if bombPos != plane.Position {
		t.Errorf("expected bomb under the plane at %v, got %v", plane.Position, bombPos)
	}

	f.combat.Update(1.0)
	e, _ := f.ecs.Enemy(target)
	if e.Health != 10 {
		t.Fatalf("expected bomb to wait before exploding, health %d", e.Health)
	}

	f.combat.Update(1.0)
	if e.Health != 5 {
		t.Errorf("expected explosion damage of 5, health %d", e.Health)
	}
	if b, _ := f.ecs.Enemy(bystander); b.Health != 10 {
		t.Errorf("expected enemy out of radius untouched, health %d", b.Health)
	}
	if len(plane.Projectiles) != 1 || plane.Projectiles[0].Position == bombPos {
		t.Errorf("expected the first bomb gone and a new one pending")
	}

	f.combat.Update(1.0)
	if len(f.ecs.Towers()) != 0 {
		t.Errorf("expected plane removed after leaving the map at x=%f", plane.Position.X)
	}
	if removed != 1 {
		t.Errorf("expected one removal event, got %d", removed)
	}
	d := f.combat.Detached()
	if len(d) != 1 || d[0].Owner != tid || len(d[0].Bombs) != 1 {
		t.Fatalf("expected the pending bomb kept after the plane left, got %+v", d)
	}

	under := f.enemies.SpawnAt("tough", lPath, d[0].Bombs[0].Position)
	f.combat.Update(1.0)
	if u, _ := f.ecs.Enemy(under); u.Health != 5 {
		t.Errorf("expected the left-behind bomb to explode, health %d", u.Health)
	}
	if len(f.combat.Detached()) != 0 {
		t.Error("expected no bombs left after the explosion")
	}
}

func TestBombsOutliveTheirPlane(t *testing.T) {
	f := newFixture(t)
	f.combat.Place("air", geom.Point{X: 300, Y: 700})
	vid, _ := f.combat.Place("air", geom.Point{X: 500, Y: 500})
	if v, _ := f.ecs.Tower(vid); v.Horizontal {
		t.Fatal("expected the second plane on the vertical track")
	}
	target := f.enemies.SpawnAt("tough", lPath, geom.Point{X: 500, Y: 110})

	// the vertical plane crosses the map in under the explode delay
	var detached bool
	for i := 0; i < 4*75; i++ {
		f.combat.Update(1.0 / 75)
		if _, ok := f.ecs.Tower(vid); !ok && len(f.combat.Detached()) > 0 {
			detached = true
		}
	}
	if _, ok := f.ecs.Tower(vid); ok {
		t.Fatal("expected the vertical plane to have left the map")
	}
	if !detached {
		t.Error("expected the plane's pending bombs to stay behind")
	}
	if e, _ := f.ecs.Enemy(target); e.Health != 5 {
		t.Errorf("expected the first bomb to explode on the enemy, health %d", e.Health)
	}
	for _, d := range f.combat.Detached() {
		if d.Owner == vid {
			t.Errorf("expected every bomb of the vertical plane to have exploded, %d left", len(d.Bombs))
		}
	}
}

func TestCombatReset(t *testing.T) {
	f := newFixture(t)
	f.combat.Place("air", geom.Point{X: 300, Y: 500})
	f.combat.Place("tank", geom.Point{X: 200, Y: 250})
	f.combat.Reset()
	if len(f.ecs.Towers()) != 0 || len(f.combat.Detached()) != 0 {
		t.Error("expected no towers or bombs after reset")
	}
	if !f.combat.PlaneWillBeHorizontal() {
		t.Error("expected alternation to restart horizontally")
	}
}
