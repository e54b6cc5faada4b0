// internal/event/types.go
package event

const (
	Resized           EventType = "Resized"           // Изменились размеры окна
	PointerMoved      EventType = "PointerMoved"      // Указатель сместился
	PointerLeft       EventType = "PointerLeft"       // Указатель покинул окно
	VisibilityChanged EventType = "VisibilityChanged" // Окно скрыто или показано
)

// ResizedPayload — новые логические размеры и масштаб устройства.
type ResizedPayload struct {
	Width  float64
	Height float64
	Scale  float64
}

// PointerPayload — позиция указателя в логических пикселях.
type PointerPayload struct {
	X float64
	Y float64
}

// VisibilityPayload — флаг скрытости окна.
type VisibilityPayload struct {
	Hidden bool
}
