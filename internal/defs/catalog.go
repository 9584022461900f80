// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown type identifier")

// Catalog is the immutable set of enemy and tower definitions for a run.
type Catalog struct {
	Enemies map[string]EnemyDefinition
	Towers  map[string]TowerDefinition
	// TowerOrder keeps the order towers were listed in, for the buy panel.
	TowerOrder []string
}

// NewCatalog builds a catalog from definition lists, keeping their order.
func NewCatalog(enemies []EnemyDefinition, towers []TowerDefinition) (*Catalog, error) {
	c := &Catalog{
		Enemies: make(map[string]EnemyDefinition, len(enemies)),
		Towers:  make(map[string]TowerDefinition, len(towers)),
	}
	for _, def := range enemies {
		if _, dup := c.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy id %q", def.ID)
		}
		c.Enemies[def.ID] = def
	}
	for _, def := range towers {
		if _, dup := c.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %q", def.ID)
		}
		c.Towers[def.ID] = def
		c.TowerOrder = append(c.TowerOrder, def.ID)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := c.Enemies[id]
	return def, ok
}

func (c *Catalog) Tower(id string) (TowerDefinition, bool) {
	def, ok := c.Towers[id]
	return def, ok
}

func (c *Catalog) validate() error {
	for id, def := range c.Enemies {
		if def.MaxHealth < 1 {
			return fmt.Errorf("enemy %q: max health must be at least 1", id)
		}
		if def.Reward < 0 || def.Penalty < 0 {
			return fmt.Errorf("enemy %q: reward and penalty must not be negative", id)
		}
		if def.Speed <= 0 {
			return fmt.Errorf("enemy %q: speed must be positive", id)
		}
		if def.ChildCount < 0 {
			return fmt.Errorf("enemy %q: child count must not be negative", id)
		}
		if def.ChildType != "" {
			if _, ok := c.Enemies[def.ChildType]; !ok {
				return fmt.Errorf("enemy %q child %q: %w", id, def.ChildType, ErrUnknownType)
			}
		}
	}
	for id, def := range c.Towers {
		if def.Cost < 0 || def.AttackDamage < 0 || def.AttackRadius < 0 {
			return fmt.Errorf("tower %q: cost, damage and radius must not be negative", id)
		}
		if def.IntervalFloor < 0 || def.IntervalFloor > def.IntervalCeil {
			return fmt.Errorf("tower %q: attack interval floor %.3f exceeds ceiling %.3f", id, def.IntervalFloor, def.IntervalCeil)
		}
	}
	return nil
}

// ValidateLevel checks that every enemy a level's waves spawn is known.
func (c *Catalog) ValidateLevel(l LevelDefinition) error {
	if len(l.Lane) < 2 {
		return fmt.Errorf("level %d: lane needs at least two points, got %d", l.Number, len(l.Lane))
	}
	for _, w := range l.Waves {
		for i, ev := range w.Events {
			if ev.Interval <= 0 {
				return fmt.Errorf("level %d wave %d event %d: interval must be positive", l.Number, w.Index, i)
			}
			if ev.Kind != EventSpawn {
				continue
			}
			if _, ok := c.Enemies[ev.EnemyID]; !ok {
				return fmt.Errorf("level %d wave %d event %d enemy %q: %w", l.Number, w.Index, i, ev.EnemyID, ErrUnknownType)
			}
		}
	}
	return nil
}
