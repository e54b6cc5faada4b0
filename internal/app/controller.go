// internal/app/controller.go
package app

import (
	"go-particle-field/internal/component"
	"go-particle-field/internal/config"
	"go-particle-field/internal/entity"
	"go-particle-field/internal/event"
	"go-particle-field/internal/schedule"
	"go-particle-field/internal/system"
	"go-particle-field/internal/utils"

	"go.uber.org/zap"
)

// Controller владеет набором частиц, состоянием указателя и циклом кадров.
// Реагирует на три внешних сигнала — ресайз, указатель, видимость окна — и
// производит единственный побочный эффект: состояние для отрисовки кадра.
//
// Вся работа идёт в одном цикле хоста: слушатели событий и шаги кадра
// сериализованы тактами ebiten, поэтому блокировки не нужны. При переносе
// в многопоточный хост мутации нужно свести в одну горутину-владельца.
type Controller struct {
	Viewport *component.Viewport
	Pointer  *component.Pointer
	Field    *entity.Field

	physics    *system.PhysicsSystem
	scheduler  schedule.Scheduler
	dispatcher *event.Dispatcher
	log        *zap.Logger

	reducedMotion bool
	visuals       string          // административный атрибут: "on", "off" или произвольное значение
	frame         schedule.Handle // 0 — кадр не запланирован
}

// NewController собирает контроллер из настроек. Цикл не запускается до Init.
func NewController(settings *config.Settings, scheduler schedule.Scheduler, dispatcher *event.Dispatcher, rng *utils.PRNGService, log *zap.Logger) *Controller {
	return &Controller{
		Viewport:      &component.Viewport{},
		Pointer:       &component.Pointer{},
		Field:         entity.NewField(rng),
		physics:       system.NewPhysicsSystem(),
		scheduler:     scheduler,
		dispatcher:    dispatcher,
		log:           log,
		reducedMotion: settings.Visuals.ReducedMotion,
		visuals:       settings.Visuals.Visuals,
	}
}

// Init нормализует атрибут visuals, проверяет гейт и при разрешении заполняет
// поле частиц, подписывается на события и планирует первый кадр. При отказе
// гейта возвращается, не аллоцируя ни частиц, ни подписок.
func (c *Controller) Init(width, height, scale float64) {
	if c.visuals == "" {
		c.visuals = config.VisualsOn
	}
	if !ShouldRun(c.reducedMotion, width, c.visuals) {
		c.log.Info("animation disabled at init",
			zap.Bool("reduced_motion", c.reducedMotion),
			zap.Float64("viewport_width", width),
			zap.String("visuals", c.visuals))
		return
	}

	c.Viewport.Set(width, height, scale)
	c.Field.Resize(width, height)

	c.dispatcher.Subscribe(event.Resized, c)
	c.dispatcher.Subscribe(event.PointerMoved, c)
	c.dispatcher.Subscribe(event.PointerLeft, c)
	c.dispatcher.Subscribe(event.VisibilityChanged, c)

	c.frame = c.scheduler.Schedule(c.step)
	c.log.Info("animation started",
		zap.Int("particles", c.Field.Count()),
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("scale", scale))
}

// step — один шаг кадра. Гейт перепроверяется каждый кадр, так что изменение
// условий (ресайз через порог, visuals="off") останавливает цикл не позже
// следующего кадра. Цикл завершает себя сам; заново его запускают только
// обработчик видимости и SetVisuals.
func (c *Controller) step() {
	if !ShouldRun(c.reducedMotion, c.Viewport.Width, c.visuals) {
		c.scheduler.Cancel(c.frame)
		c.frame = 0
		c.log.Info("animation stopped by run gate",
			zap.Float64("viewport_width", c.Viewport.Width),
			zap.String("visuals", c.visuals))
		return
	}
	c.physics.Update(c.Field, c.Pointer, c.Viewport)
	c.frame = c.scheduler.Schedule(c.step)
}

// OnEvent реализует event.Listener.
func (c *Controller) OnEvent(e event.Event) {
	switch e.Type {
	case event.Resized:
		if p, ok := e.Data.(event.ResizedPayload); ok {
			c.resize(p.Width, p.Height, p.Scale)
		}
	case event.PointerMoved:
		if p, ok := e.Data.(event.PointerPayload); ok {
			c.Pointer.Set(p.X, p.Y)
		}
	case event.PointerLeft:
		c.Pointer.Clear()
	case event.VisibilityChanged:
		if p, ok := e.Data.(event.VisibilityPayload); ok {
			c.setHidden(p.Hidden)
		}
	}
}

// resize пересчитывает размеры поверхности и приводит число частиц к целевому.
func (c *Controller) resize(width, height, scale float64) {
	c.Viewport.Set(width, height, scale)
	c.Field.Resize(width, height)
	c.log.Debug("viewport resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("physical_width", c.Viewport.PhysicalWidth()),
		zap.Int("particles", c.Field.Count()))
}

// setHidden останавливает цикл при скрытии окна и возобновляет при показе.
func (c *Controller) setHidden(hidden bool) {
	if hidden {
		if c.frame != 0 {
			c.scheduler.Cancel(c.frame)
			c.frame = 0
			c.log.Debug("animation paused, window hidden")
		}
		return
	}
	if c.frame == 0 && ShouldRun(c.reducedMotion, c.Viewport.Width, c.visuals) {
		c.frame = c.scheduler.Schedule(c.step)
		c.log.Debug("animation resumed, window visible")
	}
}

// Running сообщает, запланирован ли следующий кадр.
func (c *Controller) Running() bool {
	return c.frame != 0
}

// Visuals возвращает текущее значение административного атрибута.
func (c *Controller) Visuals() string {
	return c.visuals
}

// SetVisuals выставляет атрибут напрямую; пустое значение нормализуется в "on".
// Выключение срабатывает на следующей проверке гейта; включение возобновляет
// остановленный цикл, если гейт проходит. Контроллер, отклонённый при Init,
// остаётся инертным: его вьюпорт нулевой и гейт не пройдёт.
func (c *Controller) SetVisuals(v string) {
	if v == "" {
		v = config.VisualsOn
	}
	c.visuals = v
	if c.frame == 0 && ShouldRun(c.reducedMotion, c.Viewport.Width, c.visuals) {
		c.frame = c.scheduler.Schedule(c.step)
		c.log.Debug("animation resumed, visuals enabled")
	}
}

// Enabled — true, если атрибут не "off".
func (c *Controller) Enabled() bool {
	return c.visuals != config.VisualsOff
}

// SetEnabled — явный API включения/выключения вместо общего атрибута.
func (c *Controller) SetEnabled(enabled bool) {
	if enabled {
		c.SetVisuals(config.VisualsOn)
	} else {
		c.SetVisuals(config.VisualsOff)
	}
}
