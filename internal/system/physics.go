// internal/system/physics.go
package system

import (
	"go-particle-field/internal/component"
	"go-particle-field/internal/config"
	"go-particle-field/internal/entity"
	"math"
)

// PhysicsSystem обновляет позиции частиц: интеграция по скорости, тороидальный
// перенос за краями и отталкивание от указателя. Шаг фиксированный, один на кадр.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(field *entity.Field, pointer *component.Pointer, viewport *component.Viewport) {
	w, h := viewport.Width, viewport.Height
	for i := range field.Particles {
		p := &field.Particles[i]
		p.X += p.VX
		p.Y += p.VY

		// Тороидальный перенос с запасом WrapMargin, оси независимы
		if p.X < -config.WrapMargin {
			p.X = w + config.WrapMargin
		} else if p.X > w+config.WrapMargin {
			p.X = -config.WrapMargin
		}
		if p.Y < -config.WrapMargin {
			p.Y = h + config.WrapMargin
		} else if p.Y > h+config.WrapMargin {
			p.Y = -config.WrapMargin
		}

		if !pointer.Active {
			continue
		}
		dx := p.X - pointer.X
		dy := p.Y - pointer.Y
		dist := math.Hypot(dx, dy)
		if dist <= 0 || dist >= config.PointerRadius {
			continue
		}
		// Прибавка скорости пропорциональна (radius-dist)/radius и направлена от указателя
		force := config.PointerForce * (config.PointerRadius - dist) / config.PointerRadius
		p.VX += dx / dist * force
		p.VY += dy / dist * force
	}
}
