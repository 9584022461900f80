// internal/system/player_system.go
package system

import (
	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/entity"
)

// PlayerSystem отвечает за экономику игрока: деньги, жизни и исход игры.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

func (s *PlayerSystem) Money() int { return s.ecs.Player.Money }
func (s *PlayerSystem) Lives() int { return s.ecs.Player.Lives }

func (s *PlayerSystem) IsWinner() bool { return s.ecs.Player.Winner }
func (s *PlayerSystem) IsLoser() bool  { return s.ecs.Player.Loser }

// IsSuspended reports whether the game has already been won or lost.
func (s *PlayerSystem) IsSuspended() bool {
	return s.ecs.Player.Winner || s.ecs.Player.Loser
}

func (s *PlayerSystem) CanAfford(cost int) bool {
	return s.ecs.Player.Money >= cost
}

// Reward adds money. There is no cap.
func (s *PlayerSystem) Reward(amount int) {
	s.ecs.Player.Money += amount
}

// Penalize takes lives away, never below zero. Losing the last life makes the
// player the loser. Nothing happens once the game is decided.
func (s *PlayerSystem) Penalize(livesLost int) {
	p := s.ecs.Player
	if s.IsSuspended() {
		return
	}
	p.Lives -= livesLost
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Loser = p.Lives == 0
}

// SpendIfAffordable deducts cost only when the whole amount is available.
func (s *PlayerSystem) SpendIfAffordable(cost int) bool {
	if s.IsSuspended() || !s.CanAfford(cost) {
		return false
	}
	s.ecs.Player.Money -= cost
	return true
}

func (s *PlayerSystem) Win() {
	s.ecs.Player.Winner = true
}

// Reset restores starting money and lives. The outcome flags are left alone,
// see ClearOutcome.
func (s *PlayerSystem) Reset() {
	s.ecs.Player.Money = config.StartingMoney
	s.ecs.Player.Lives = config.StartingLives
}

// ClearOutcome forgets a previous win or loss.
func (s *PlayerSystem) ClearOutcome() {
	s.ecs.Player.Winner = false
	s.ecs.Player.Loser = false
}
