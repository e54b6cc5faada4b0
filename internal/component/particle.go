// internal/component/particle.go
package component

// Particle — одна частица фона. Позиция и скорость в логических пикселях,
// радиус фиксируется при создании. Идентичности нет: частица — это позиция в слайсе.
type Particle struct {
	X, Y   float64
	VX, VY float64
	R      float64
}
