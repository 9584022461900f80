// internal/types/types.go
package types

// EntityID identifies a live enemy or tower. IDs are handed out by the ECS in
// increasing order and are never reused within a run; zero means "no entity".
type EntityID uint64
