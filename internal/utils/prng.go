// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// RandUpTo возвращает случайное число в диапазоне [0, max).
func (s *PRNGService) RandUpTo(max float32) float32 {
	return s.rng.Float32() * max
}

// RandFromTo возвращает случайное число в диапазоне [from, to).
// Если границы перепутаны, они меняются местами.
func (s *PRNGService) RandFromTo(from, to float32) float32 {
	if from > to {
		from, to = to, from
	}
	return from + s.rng.Float32()*(to-from)
}
