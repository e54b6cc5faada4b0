// internal/component/viewport.go
package component

// Viewport — состояние поверхности рисования: логические размеры и масштаб
// устройства. Физические размеры пересчитываются при каждом ресайзе, чтобы
// координаты рисования оставались в логических пикселях независимо от плотности.
type Viewport struct {
	Width  float64 // логическая ширина
	Height float64 // логическая высота
	Scale  float64 // device scale factor
}

// Set обновляет размеры и масштаб.
func (v *Viewport) Set(width, height, scale float64) {
	v.Width = width
	v.Height = height
	if scale <= 0 {
		scale = 1
	}
	v.Scale = scale
}

// Area возвращает логическую площадь.
func (v *Viewport) Area() float64 {
	return v.Width * v.Height
}

// PhysicalWidth возвращает ширину в физических пикселях.
func (v *Viewport) PhysicalWidth() float64 {
	return v.Width * v.Scale
}

// PhysicalHeight возвращает высоту в физических пикселях.
func (v *Viewport) PhysicalHeight() float64 {
	return v.Height * v.Scale
}
