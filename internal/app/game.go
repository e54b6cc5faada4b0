// internal/app/game.go
package app

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/schedule"
	"go-particle-field/internal/system"
	"go-particle-field/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game — адаптер ebiten.Game: превращает сигналы хоста (ресайз, указатель,
// сворачивание окна, клавиши) в события диспетчера и тактирует планировщик
// кадров. Вся отрисовка идёт в Draw, физика — в колбэке кадра внутри Update.
type Game struct {
	controller *Controller
	scheduler  *schedule.TickScheduler
	dispatcher *event.Dispatcher
	render     *system.RenderSystem
	overlay    *ui.Overlay

	showOverlay bool
	hidden      bool
	pointerIn   bool
	touches     []ebiten.TouchID
	width       int // логические размеры из Layout
	height      int
}

// NewGame собирает адаптер вокруг контроллера.
func NewGame(controller *Controller, scheduler *schedule.TickScheduler, dispatcher *event.Dispatcher, render *system.RenderSystem, overlay *ui.Overlay, showOverlay bool) *Game {
	return &Game{
		controller:  controller,
		scheduler:   scheduler,
		dispatcher:  dispatcher,
		render:      render,
		overlay:     overlay,
		showOverlay: showOverlay,
	}
}

func (g *Game) Update() error {
	// Видимость: сворачивание окна — аналог скрытой вкладки
	hidden := ebiten.IsWindowMinimized()
	if hidden != g.hidden {
		g.hidden = hidden
		g.dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: hidden}})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.controller.SetEnabled(!g.controller.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showOverlay = !g.showOverlay
	}

	g.trackPointer()

	// Один такт — не более одного колбэка кадра
	g.scheduler.Tick()
	return nil
}

// trackPointer обновляет указатель: первое активное касание имеет приоритет,
// иначе берётся курсор; выход курсора за пределы окна очищает указатель.
func (g *Game) trackPointer() {
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	if len(g.touches) > 0 {
		x, y := ebiten.TouchPosition(g.touches[0])
		g.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerPayload{X: float64(x), Y: float64(y)}})
		g.pointerIn = true
		return
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	if inside {
		g.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerPayload{X: float64(x), Y: float64(y)}})
	} else if g.pointerIn {
		g.dispatcher.Dispatch(event.Event{Type: event.PointerLeft})
	}
	g.pointerIn = inside
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Каждый кадр поверхность очищается; при остановленном цикле остаётся фон
	screen.Fill(config.BackgroundColor)
	if g.controller.Running() {
		g.render.Draw(screen, g.controller.Field)
	}
	if g.showOverlay && g.overlay != nil {
		g.overlay.Draw(screen, ui.Stats{
			Particles: g.controller.Field.Count(),
			TPS:       ebiten.ActualTPS(),
			Running:   g.controller.Running(),
			Visuals:   g.controller.Visuals(),
		})
	}
}

// Layout возвращает логические размеры и отслеживает ресайз. Диспатч отсюда
// безопасен: ebiten вызывает Layout и Update в одном цикле.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizedPayload{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
			Scale:  ebiten.Monitor().DeviceScaleFactor(),
		}})
	}
	return outsideWidth, outsideHeight
}
