// internal/component/pointer.go
package component

// Pointer — позиция активного указателя (мышь или первое касание).
// Active=false означает "указатель отсутствует".
type Pointer struct {
	X, Y   float64
	Active bool
}

// Set запоминает позицию указателя.
func (p *Pointer) Set(x, y float64) {
	p.X = x
	p.Y = y
	p.Active = true
}

// Clear сбрасывает указатель в состояние "отсутствует".
func (p *Pointer) Clear() {
	p.Active = false
}
