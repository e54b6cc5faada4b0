// internal/config/config.go
package config

import "image/color"

const (
	MinParticles    = 30      // нижняя граница числа частиц
	MaxParticles    = 120     // верхняя граница числа частиц
	AreaPerParticle = 16000.0 // логических пикселей площади на одну частицу

	MinParticleRadius = 0.6
	MaxParticleRadius = 2.4
	ParticleDrift     = 0.4 // максимальная компонента скорости при спавне, px/кадр

	LinkDistance  = 120.0 // порог расстояния для соединительной линии
	LinkBaseAlpha = 0.12  // альфа линии при нулевом расстоянии
	LinkWidth     = 1.0

	PointerRadius = 90.0 // радиус взаимодействия указателя
	PointerForce  = 0.6  // коэффициент отталкивания

	WrapMargin = 10.0 // запас тороидального переноса за краем экрана

	MinViewportWidth = 640.0 // при ширине <= порога анимация не запускается

	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "Particle Field"
)

// Значения административного атрибута visuals.
const (
	VisualsOn  = "on"
	VisualsOff = "off"
)

var (
	BackgroundColor = color.RGBA{10, 14, 22, 255}
	ParticleColor   = color.RGBA{140, 170, 220, 255}
	LinkColor       = color.NRGBA{120, 150, 210, 255} // A выставляется по расстоянию
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayBgColor  = color.NRGBA{10, 14, 22, 200}
)
