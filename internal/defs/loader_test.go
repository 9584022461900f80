package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.2">
 <objectgroup name="decor"><object id="1" x="5" y="5" width="10" height="10"/></objectgroup>
 <objectgroup name="lane">
  <object id="2" x="0" y="200"><polyline points="0,0 100,0 100,50"/></object>
 </objectgroup>
</map>`

func TestLoadEnemyDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "enemies.csv", "# comment\nslicer;Slicer;s.png;1;2;1;150;;0\nsuper;Super;ss.png;3;15;2;112.5;slicer;2;64;32\n")

	got, err := LoadEnemyDefinitions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(got))
	}
	if got[0].ID != "slicer" || got[0].Speed != 150 || got[0].HasChildren() {
		t.Errorf("unexpected first definition: %+v", got[0])
	}
	if got[0].Footprint != config.EnemyFootprint {
		t.Errorf("expected default footprint, got %v", got[0].Footprint)
	}
	if got[1].ChildType != "slicer" || got[1].ChildCount != 2 || !got[1].HasChildren() {
		t.Errorf("unexpected child data: %+v", got[1])
	}
	if got[1].Footprint != (geom.Size{W: 64, H: 32}) {
		t.Errorf("expected footprint override, got %v", got[1].Footprint)
	}
}

func TestLoadEnemyDefinitionsMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad int":       "slicer;Slicer;s.png;x;2;1;150;;0\n",
		"missing field": "slicer;Slicer;s.png;1;2;1\n",
	}
	for name, content := range cases {
		path := writeFile(t, dir, name+".csv", content)
		if _, err := LoadEnemyDefinitions(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoadTowerDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "towers.csv", "tank;Tank;t.png;tp.png;250;1;1;1;100;false\nair;Air;a.png;b.png;500;500;1;2;200;true\n")

	got, err := LoadTowerDefinitions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].AirSupport || got[0].Cost != 250 || got[0].AttackRadius != 100 {
		t.Errorf("unexpected tank: %+v", got[0])
	}
	if !got[1].AirSupport || got[1].IntervalFloor != 1 || got[1].IntervalCeil != 2 {
		t.Errorf("unexpected air support: %+v", got[1])
	}
	if got[1].Footprint != config.AirplaneFootprint {
		t.Errorf("expected airplane footprint, got %v", got[1].Footprint)
	}
}

func TestLoadWaveDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "waves.txt", "2,spawn,3,slicer,500\n1,spawn,5,slicer,1000\n2,delay,2000\n")

	waves, err := LoadWaveDefinitions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(waves) != 2 || waves[0].Index != 1 || waves[1].Index != 2 {
		t.Fatalf("expected waves sorted by index, got %+v", waves)
	}
	second := waves[1].Events
	if len(second) != 2 {
		t.Fatalf("expected 2 events in wave 2, got %d", len(second))
	}
	if second[0].Kind != EventSpawn || second[0].Count != 3 || second[0].Interval != 0.5 {
		t.Errorf("unexpected spawn event: %+v", second[0])
	}
	if second[1].Kind != EventDelay || second[1].Count != 1 || second[1].Interval != 2 || second[1].EnemyID != "" {
		t.Errorf("unexpected delay event: %+v", second[1])
	}
}

func TestLoadWaveDefinitionsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "waves.txt", "1,teleport,1000\n")
	if _, err := LoadWaveDefinitions(path); err == nil {
		t.Error("expected error for unknown event kind")
	}
}

func TestParseLane(t *testing.T) {
	lane, err := ParseLane([]byte(testMap))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []geom.Point{{X: 0, Y: 200}, {X: 100, Y: 200}, {X: 100, Y: 250}}
	if len(lane) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(lane))
	}
	for i := range want {
		if lane[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], lane[i])
		}
	}

	if _, err := ParseLane([]byte(`<map><objectgroup/></map>`)); !errors.Is(err, ErrNoLane) {
		t.Errorf("expected ErrNoLane, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EnemiesFile, "slicer;Slicer;s.png;1;2;1;150;;0\n")
	writeFile(t, dir, TowersFile, "tank;Tank;t.png;tp.png;250;1;1;1;100;false\n")
	writeFile(t, dir, LevelsFile, "2;maps/b.tmx;waves/b.txt\n1;maps/a.tmx;waves/a.txt\n")
	writeFile(t, dir, "maps/a.tmx", testMap)
	writeFile(t, dir, "maps/b.tmx", testMap)
	writeFile(t, dir, "waves/a.txt", "1,spawn,2,slicer,1000\n")
	writeFile(t, dir, "waves/b.txt", "1,delay,1000\n")

	catalog, levels, err := LoadAll(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := catalog.Tower("tank"); !ok {
		t.Error("expected tank in catalog")
	}
	if len(levels) != 2 || levels[0].Number != 1 || levels[1].Number != 2 {
		t.Fatalf("expected levels in ascending order, got %+v", levels)
	}
	if len(levels[0].Lane) != 3 {
		t.Errorf("expected lane of 3 points, got %d", len(levels[0].Lane))
	}
}

func TestLoadAllRejectsUnknownWaveEnemy(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, EnemiesFile, "slicer;Slicer;s.png;1;2;1;150;;0\n")
	writeFile(t, dir, TowersFile, "tank;Tank;t.png;tp.png;250;1;1;1;100;false\n")
	writeFile(t, dir, LevelsFile, "1;a.tmx;a.txt\n")
	writeFile(t, dir, "a.tmx", testMap)
	writeFile(t, dir, "a.txt", "1,spawn,2,ghost,1000\n")

	if _, _, err := LoadAll(dir); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	slicer := EnemyDefinition{ID: "slicer", MaxHealth: 1, Speed: 1}
	tank := TowerDefinition{ID: "tank", IntervalFloor: 1, IntervalCeil: 2}

	if _, err := NewCatalog([]EnemyDefinition{slicer}, []TowerDefinition{tank}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orphan := EnemyDefinition{ID: "super", MaxHealth: 1, Speed: 1, ChildType: "ghost", ChildCount: 2}
	if _, err := NewCatalog([]EnemyDefinition{slicer, orphan}, nil); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType for unknown child, got %v", err)
	}

	inverted := TowerDefinition{ID: "bad", IntervalFloor: 3, IntervalCeil: 2}
	if _, err := NewCatalog(nil, []TowerDefinition{inverted}); err == nil {
		t.Error("expected error for floor above ceiling")
	}

	if _, err := NewCatalog([]EnemyDefinition{slicer, slicer}, nil); err == nil {
		t.Error("expected error for duplicate id")
	}
}
