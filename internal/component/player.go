// internal/component/player.go
package component

// PlayerState хранит деньги, жизни и исход игры.
type PlayerState struct {
	Money  int
	Lives  int
	Winner bool
	Loser  bool
}
