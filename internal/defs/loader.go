// internal/defs/loader.go
package defs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

const (
	separator    = ';'
	txtSeparator = ','

	EnemiesFile = "enemies.csv"
	TowersFile  = "towers.csv"
	LevelsFile  = "levels.csv"
)

// record walks the fields of one CSV row and remembers the first parse error.
type record struct {
	path   string
	line   int
	fields []string
	next   int
	err    error
}

func (r *record) fail(format string, args ...interface{}) {
	if r.err == nil {
		r.err = fmt.Errorf("%s:%d: %s", r.path, r.line, fmt.Sprintf(format, args...))
	}
}

func (r *record) remaining() int { return len(r.fields) - r.next }

func (r *record) nextString(name string) string {
	if r.next >= len(r.fields) {
		r.fail("missing field %s", name)
		return ""
	}
	s := strings.TrimSpace(r.fields[r.next])
	r.next++
	return s
}

func (r *record) nextInt(name string) int {
	s := r.nextString(name)
	if r.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		r.fail("field %s: %v", name, err)
	}
	return v
}

func (r *record) nextFloat(name string) float64 {
	s := r.nextString(name)
	if r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.fail("field %s: %v", name, err)
	}
	return v
}

func (r *record) nextBool(name string) bool {
	s := r.nextString(name)
	if r.err != nil {
		return false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		r.fail("field %s: %v", name, err)
	}
	return v
}

// footprint reads the optional trailing width and height columns.
func (r *record) footprint(def geom.Size) geom.Size {
	if r.remaining() < 2 {
		return def
	}
	return geom.Size{W: r.nextFloat("width"), H: r.nextFloat("height")}
}

// readRecords parses a data file. Files ending in .txt are comma separated,
// everything else uses semicolons.
func readRecords(path string) ([]*record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = separator
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		reader.Comma = txtSeparator
	}
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	var records []*record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, &record{path: path, line: line, fields: fields})
	}
	return records, nil
}

// LoadEnemyDefinitions reads rows of
// id;name;sprite;max_health;reward;penalty;speed;child_type;child_count[;width;height].
func LoadEnemyDefinitions(path string) ([]EnemyDefinition, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	defs := make([]EnemyDefinition, 0, len(records))
	for _, r := range records {
		def := EnemyDefinition{
			ID:         r.nextString("id"),
			Name:       r.nextString("name"),
			Sprite:     r.nextString("sprite"),
			MaxHealth:  r.nextInt("max_health"),
			Reward:     r.nextInt("reward"),
			Penalty:    r.nextInt("penalty"),
			Speed:      r.nextFloat("speed"),
			ChildType:  r.nextString("child_type"),
			ChildCount: r.nextInt("child_count"),
		}
		def.Footprint = r.footprint(config.EnemyFootprint)
		if r.err != nil {
			return nil, r.err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadTowerDefinitions reads rows of
// id;name;sprite;attack_sprite;cost;damage;interval_floor;interval_ceil;radius;is_air[;width;height].
func LoadTowerDefinitions(path string) ([]TowerDefinition, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	defs := make([]TowerDefinition, 0, len(records))
	for _, r := range records {
		def := TowerDefinition{
			ID:            r.nextString("id"),
			Name:          r.nextString("name"),
			Sprite:        r.nextString("sprite"),
			AttackSprite:  r.nextString("attack_sprite"),
			Cost:          r.nextInt("cost"),
			AttackDamage:  r.nextInt("attack_damage"),
			IntervalFloor: r.nextFloat("interval_floor"),
			IntervalCeil:  r.nextFloat("interval_ceil"),
			AttackRadius:  r.nextFloat("attack_radius"),
			AirSupport:    r.nextBool("is_air"),
		}
		fallback := config.TowerFootprint
		if def.AirSupport {
			fallback = config.AirplaneFootprint
		}
		def.Footprint = r.footprint(fallback)
		if r.err != nil {
			return nil, r.err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadWaveDefinitions reads rows of wave,spawn,count,enemy,interval_ms or
// wave,delay,interval_ms and groups them by wave index in ascending order.
// Intervals are converted to seconds.
func LoadWaveDefinitions(path string) ([]WaveDefinition, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	byIndex := make(map[int][]EventDefinition)
	for _, r := range records {
		index := r.nextInt("wave")
		ev := EventDefinition{Kind: EventKind(r.nextString("event")), Count: 1}
		switch ev.Kind {
		case EventSpawn:
			ev.Count = r.nextInt("count")
			ev.EnemyID = r.nextString("enemy")
			if r.err == nil && ev.Count < 1 {
				r.fail("spawn count must be at least 1")
			}
		case EventDelay:
		default:
			r.fail("unknown event kind %q", ev.Kind)
		}
		ev.Interval = r.nextFloat("interval") / 1000.0
		if r.err != nil {
			return nil, r.err
		}
		byIndex[index] = append(byIndex[index], ev)
	}

	waves := make([]WaveDefinition, 0, len(byIndex))
	for index, events := range byIndex {
		waves = append(waves, WaveDefinition{Index: index, Events: events})
	}
	sort.Slice(waves, func(i, j int) bool { return waves[i].Index < waves[j].Index })
	return waves, nil
}

// LoadLevelDefinitions reads rows of level;map;waves. Paths are relative to
// the directory holding the levels file. Levels come back in ascending order.
func LoadLevelDefinitions(path string) ([]LevelDefinition, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	levels := make([]LevelDefinition, 0, len(records))
	for _, r := range records {
		number := r.nextInt("level")
		mapPath := r.nextString("map")
		wavesPath := r.nextString("waves")
		if r.err != nil {
			return nil, r.err
		}
		lane, err := LoadLane(filepath.Join(dir, mapPath))
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", number, err)
		}
		waves, err := LoadWaveDefinitions(filepath.Join(dir, wavesPath))
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", number, err)
		}
		levels = append(levels, LevelDefinition{Number: number, MapPath: mapPath, Lane: lane, Waves: waves})
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Number < levels[j].Number })
	return levels, nil
}

// LoadAll reads the enemy, tower and level files from dir and validates that
// every type a wave or child spawn refers to exists.
func LoadAll(dir string) (*Catalog, []LevelDefinition, error) {
	enemies, err := LoadEnemyDefinitions(filepath.Join(dir, EnemiesFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	towers, err := LoadTowerDefinitions(filepath.Join(dir, TowersFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tower definitions: %w", err)
	}
	catalog, err := NewCatalog(enemies, towers)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalog: %w", err)
	}
	levels, err := LoadLevelDefinitions(filepath.Join(dir, LevelsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, nil, fmt.Errorf("no levels defined in %s", filepath.Join(dir, LevelsFile))
	}
	for _, l := range levels {
		if err := catalog.ValidateLevel(l); err != nil {
			return nil, nil, fmt.Errorf("invalid level: %w", err)
		}
	}

	log.Printf("Loaded %d enemy definitions, %d tower definitions, %d levels", len(catalog.Enemies), len(catalog.Towers), len(levels))
	return catalog, levels, nil
}
