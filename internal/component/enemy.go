// internal/component/enemy.go
package component

import "github.com/gttkeith/gtt-sdef/internal/types"

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID     types.EntityID
	DefID  string // ID из enemies.csv
	Health int
	Path   Path
	Body
}

// Alive reports whether the enemy still has health left.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// ReachedEnd reports whether the enemy has walked its whole path.
func (e *Enemy) ReachedEnd() bool { return e.Path.Done() }
