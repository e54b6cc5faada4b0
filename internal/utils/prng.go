// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всём приложении.
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

// Float64 возвращает случайное число в [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange возвращает случайное число в [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}
