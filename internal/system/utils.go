// internal/system/utils.go
package system

import (
	"github.com/gttkeith/gtt-sdef/internal/entity"
	"github.com/gttkeith/gtt-sdef/internal/types"
)

// ApplyDamage наносит урон врагу. Здоровье может уйти в минус; смерть
// обрабатывается при следующем обновлении врагов.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage int) {
	if damage <= 0 {
		return
	}
	if enemy, ok := ecs.Enemy(enemyID); ok {
		enemy.Health -= damage
	}
}
