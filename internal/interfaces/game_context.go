// internal/interfaces/game_context.go
package interfaces

import (
	"github.com/gttkeith/gtt-sdef/internal/types"
	"github.com/gttkeith/gtt-sdef/pkg/geom"
)

// Economy — то, что системам врагов нужно от состояния игрока.
type Economy interface {
	Reward(amount int)
	Penalize(livesLost int)
}

// EnemySpawner принимает запросы на появление врагов от планировщика волн.
type EnemySpawner interface {
	Spawn(defID string, path []geom.Point) types.EntityID
}
