// internal/entity/field.go
package entity

import (
	"go-particle-field/internal/component"
	"go-particle-field/internal/config"
	"go-particle-field/internal/utils"
)

// Field владеет набором частиц. Частицы создаются пачками до целевого числа
// и удаляются только с конца, когда целевое число уменьшается.
type Field struct {
	Particles []component.Particle
	rng       *utils.PRNGService
}

// NewField создаёт пустое поле частиц.
func NewField(rng *utils.PRNGService) *Field {
	return &Field{rng: rng}
}

// TargetCount возвращает целевое число частиц для данных логических размеров:
// clamp(30, 120, floor(area/16000)). Нулевая площадь деградирует до минимума.
func TargetCount(width, height float64) int {
	return utils.ClampInt(config.MinParticles, config.MaxParticles, int(width*height/config.AreaPerParticle))
}

// Resize приводит число частиц к целевому для новых размеров. Новые частицы
// получают свежее случайное состояние, лишние отбрасываются с конца.
func (f *Field) Resize(width, height float64) {
	target := TargetCount(width, height)
	for len(f.Particles) < target {
		f.Particles = append(f.Particles, f.spawn(width, height))
	}
	if len(f.Particles) > target {
		f.Particles = f.Particles[:target]
	}
}

// Count возвращает текущее число частиц.
func (f *Field) Count() int {
	return len(f.Particles)
}

func (f *Field) spawn(width, height float64) component.Particle {
	return component.Particle{
		X:  f.rng.FloatRange(0, width),
		Y:  f.rng.FloatRange(0, height),
		VX: f.rng.FloatRange(-config.ParticleDrift, config.ParticleDrift),
		VY: f.rng.FloatRange(-config.ParticleDrift, config.ParticleDrift),
		R:  f.rng.FloatRange(config.MinParticleRadius, config.MaxParticleRadius),
	}
}
