// internal/system/render.go
package system

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/entity"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует частицы и соединительные линии
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// LinkAlpha возвращает альфу соединительной линии: линейный спад от базовой
// альфы к нулю по мере приближения расстояния к порогу.
func LinkAlpha(dist float64) float64 {
	if dist >= config.LinkDistance {
		return 0
	}
	return config.LinkBaseAlpha * (1 - dist/config.LinkDistance)
}

func (s *RenderSystem) Draw(screen *ebiten.Image, field *entity.Field) {
	for i := range field.Particles {
		p := &field.Particles[i]
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.R), config.ParticleColor, true)
	}

	// O(n²) по неупорядоченным парам; n ограничено MaxParticles
	const thresholdSq = config.LinkDistance * config.LinkDistance
	for i := 0; i < len(field.Particles); i++ {
		a := &field.Particles[i]
		for j := i + 1; j < len(field.Particles); j++ {
			b := &field.Particles[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			distSq := dx*dx + dy*dy
			if distSq >= thresholdSq {
				continue
			}
			col := config.LinkColor
			col.A = uint8(LinkAlpha(math.Sqrt(distSq)) * 255)
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.LinkWidth, col, true)
		}
	}
}
