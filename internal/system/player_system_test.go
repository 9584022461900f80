package system

import (
	"testing"

	"github.com/gttkeith/gtt-sdef/internal/config"
	"github.com/gttkeith/gtt-sdef/internal/entity"
)

func TestSpendIfAffordable(t *testing.T) {
	ps := NewPlayerSystem(entity.NewECS())
	if ps.Money() != 500 {
		t.Fatalf("expected starting money 500, got %d", ps.Money())
	}

	if ps.SpendIfAffordable(501) {
		t.Error("expected spending 501 of 500 to fail")
	}
	if ps.Money() != 500 {
		t.Errorf("expected money unchanged after failed spend, got %d", ps.Money())
	}

	if !ps.SpendIfAffordable(500) {
		t.Error("expected spending exactly 500 to succeed")
	}
	if ps.Money() != 0 {
		t.Errorf("expected money 0, got %d", ps.Money())
	}
}

func TestPenalizeClampsAndLoses(t *testing.T) {
	ps := NewPlayerSystem(entity.NewECS())
	if ps.Lives() != 25 {
		t.Fatalf("expected starting lives 25, got %d", ps.Lives())
	}

	ps.Penalize(5)
	if ps.Lives() != 20 || ps.IsLoser() {
		t.Errorf("expected 20 lives and no loss, got %d lives, loser=%v", ps.Lives(), ps.IsLoser())
	}

	ps.Penalize(30)
	if ps.Lives() != 0 {
		t.Errorf("expected lives clamped to 0, got %d", ps.Lives())
	}
	if !ps.IsLoser() || !ps.IsSuspended() {
		t.Error("expected player to have lost")
	}
}

func TestSuspendedPlayerIsFrozen(t *testing.T) {
	ps := NewPlayerSystem(entity.NewECS())
	ps.Win()
	ps.Win()
	if !ps.IsWinner() || !ps.IsSuspended() {
		t.Fatal("expected winner to be suspended")
	}

	ps.Penalize(100)
	if ps.Lives() != config.StartingLives || ps.IsLoser() {
		t.Errorf("expected penalties to be ignored once won, got %d lives", ps.Lives())
	}
	if ps.SpendIfAffordable(1) {
		t.Error("expected spending to fail once won")
	}

	ps.Reward(10)
	if ps.Money() != config.StartingMoney+10 {
		t.Errorf("expected rewards to still apply, got %d", ps.Money())
	}
}

func TestResetKeepsOutcome(t *testing.T) {
	ps := NewPlayerSystem(entity.NewECS())
	ps.Reward(1000)
	ps.Penalize(25)

	ps.Reset()
	if ps.Money() != config.StartingMoney || ps.Lives() != config.StartingLives {
		t.Errorf("expected starting values, got money %d lives %d", ps.Money(), ps.Lives())
	}
	if !ps.IsLoser() {
		t.Error("expected Reset to leave the loser flag alone")
	}

	ps.ClearOutcome()
	if ps.IsSuspended() {
		t.Error("expected ClearOutcome to lift suspension")
	}
}
