// internal/component/tower.go
package component

import "github.com/gttkeith/gtt-sdef/internal/types"

type Tower struct {
	ID             types.EntityID
	DefID          string  // ID из towers.csv
	AirSupport     bool    // летает по прямой и сбрасывает бомбы
	Horizontal     bool    // направление полёта (только для авиаподдержки)
	AttackProgress float64 // секунды с последнего выстрела
	AttackInterval float64 // текущий случайный интервал атаки
	Projectiles    []*Projectile
	Body
}
