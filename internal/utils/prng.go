// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// RandomSource выдаёт равномерно распределённые числа. Симуляция получает его
// явно, чтобы тесты могли подставить детерминированную заглушку.
type RandomSource interface {
	// Uniform returns a value in [lo, hi). When lo == hi it returns lo.
	Uniform(lo, hi float64) float64
}

// PRNGService draws tower fire intervals from a seeded generator, so a run
// can be replayed with -seed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService seeds from the clock when seed is 0.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

func (s *PRNGService) Float64() float64 { return s.rng.Float64() }

// Uniform возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
