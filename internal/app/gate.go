// internal/app/gate.go
package app

import "go-particle-field/internal/config"

// ShouldRun — чистая функция гейта запуска. Анимация разрешена, только если
// платформа не просит уменьшенного движения, ширина вьюпорта больше порога
// и административный атрибут не равен "off". Пустой атрибут считается "on".
func ShouldRun(reducedMotion bool, viewportWidth float64, visuals string) bool {
	if reducedMotion {
		return false
	}
	if viewportWidth <= config.MinViewportWidth {
		return false
	}
	if visuals == config.VisualsOff {
		return false
	}
	return true
}
