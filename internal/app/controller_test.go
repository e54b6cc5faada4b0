// internal/app/controller_test.go
package app

import (
	"testing"

	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/schedule"
	"go-particle-field/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController(visuals string, reduced bool) (*Controller, *schedule.TickScheduler, *event.Dispatcher) {
	scheduler := schedule.NewTickScheduler()
	dispatcher := event.NewDispatcher()
	settings := &config.Settings{
		Visuals: config.VisualSettings{Visuals: visuals, ReducedMotion: reduced, Seed: 1},
	}
	c := NewController(settings, scheduler, dispatcher, utils.NewPRNGService(1), zap.NewNop())
	return c, scheduler, dispatcher
}

func TestInitStartsLoop(t *testing.T) {
	c, scheduler, _ := newTestController("", false)
	c.Init(1920, 1080, 1)

	require.True(t, c.Running())
	require.True(t, scheduler.Pending())
	// floor(1920*1080/16000) = 129, clamped to 120
	assert.Equal(t, 120, c.Field.Count())
	// Unset attribute normalized to "on"
	assert.Equal(t, "on", c.Visuals())
}

func TestInitNarrowViewport(t *testing.T) {
	c, scheduler, dispatcher := newTestController("", false)
	c.Init(600, 800, 1)

	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
	assert.Zero(t, c.Field.Count())

	// Gate denial at init skips subscriptions, so later signals are ignored.
	dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizedPayload{Width: 1920, Height: 1080, Scale: 1}})
	assert.Zero(t, c.Field.Count())
	assert.False(t, c.Running())
}

func TestInitVisualsOff(t *testing.T) {
	c, scheduler, _ := newTestController("off", false)
	c.Init(1920, 1080, 1)

	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
	assert.Zero(t, c.Field.Count())
}

func TestInitReducedMotion(t *testing.T) {
	c, _, _ := newTestController("", true)
	c.Init(1920, 1080, 1)
	assert.False(t, c.Running())
}

func TestInitArbitraryVisualsValueEnables(t *testing.T) {
	c, _, _ := newTestController("fancy", false)
	c.Init(1920, 1080, 1)
	assert.True(t, c.Running())
	assert.Equal(t, "fancy", c.Visuals())
}

func TestStepReschedulesExactlyOneFrame(t *testing.T) {
	c, scheduler, _ := newTestController("", false)
	c.Init(1920, 1080, 1)

	for i := 0; i < 5; i++ {
		require.True(t, scheduler.Tick())
		require.True(t, scheduler.Pending(), "step %d must leave one scheduled frame", i)
		require.True(t, c.Running())
	}
}

func TestGateFailureSelfTerminates(t *testing.T) {
	c, scheduler, _ := newTestController("", false)
	c.Init(1920, 1080, 1)

	c.SetEnabled(false)
	require.True(t, scheduler.Tick())
	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
	assert.False(t, scheduler.Tick())
}

func TestResizeBelowThresholdStopsNextFrame(t *testing.T) {
	c, scheduler, dispatcher := newTestController("", false)
	c.Init(1920, 1080, 1)

	dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizedPayload{Width: 600, Height: 800, Scale: 1}})
	// The resize itself keeps the listener alive; the gate stops the loop
	// on the next frame.
	require.True(t, c.Running())
	scheduler.Tick()
	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
}

func TestResizeRecomputesParticleCount(t *testing.T) {
	c, _, dispatcher := newTestController("", false)
	c.Init(1920, 1080, 1)
	require.Equal(t, 120, c.Field.Count())

	dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizedPayload{Width: 800, Height: 900, Scale: 1}})
	// floor(800*900/16000) = 45
	assert.Equal(t, 45, c.Field.Count())

	dispatcher.Dispatch(event.Event{Type: event.Resized, Data: event.ResizedPayload{Width: 1920, Height: 1080, Scale: 2}})
	assert.Equal(t, 120, c.Field.Count())
	assert.InDelta(t, 3840, c.Viewport.PhysicalWidth(), 1e-9)
}

func TestVisibilityPauseAndResume(t *testing.T) {
	c, scheduler, dispatcher := newTestController("", false)
	c.Init(1920, 1080, 1)

	dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: true}})
	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())

	// Showing the window again schedules exactly one new frame.
	dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: false}})
	require.True(t, c.Running())
	require.True(t, scheduler.Pending())

	// A duplicate "visible" signal must not stack another frame.
	firstHandle := c.frame
	dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: false}})
	assert.Equal(t, firstHandle, c.frame)
	require.True(t, scheduler.Tick())
	assert.True(t, scheduler.Pending())
}

func TestVisibilityResumeDeniedByGate(t *testing.T) {
	c, scheduler, dispatcher := newTestController("", false)
	c.Init(1920, 1080, 1)

	c.SetEnabled(false)
	scheduler.Tick() // loop stops itself

	dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: true}})
	dispatcher.Dispatch(event.Event{Type: event.VisibilityChanged, Data: event.VisibilityPayload{Hidden: false}})
	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
}

func TestPointerEvents(t *testing.T) {
	c, _, dispatcher := newTestController("", false)
	c.Init(1920, 1080, 1)

	dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerPayload{X: 10, Y: 20}})
	require.True(t, c.Pointer.Active)
	assert.Equal(t, 10.0, c.Pointer.X)
	assert.Equal(t, 20.0, c.Pointer.Y)

	dispatcher.Dispatch(event.Event{Type: event.PointerLeft})
	assert.False(t, c.Pointer.Active)
}

func TestSetEnabledFlipsAttribute(t *testing.T) {
	c, _, _ := newTestController("", false)
	c.Init(1920, 1080, 1)

	c.SetEnabled(false)
	assert.Equal(t, "off", c.Visuals())
	assert.False(t, c.Enabled())

	c.SetEnabled(true)
	assert.Equal(t, "on", c.Visuals())
	assert.True(t, c.Enabled())
}

func TestSetEnabledRestartsStoppedLoop(t *testing.T) {
	c, scheduler, _ := newTestController("", false)
	c.Init(1920, 1080, 1)

	c.SetEnabled(false)
	scheduler.Tick() // loop stops itself on the gate check
	require.False(t, c.Running())

	c.SetEnabled(true)
	require.True(t, c.Running())
	require.True(t, scheduler.Pending())
	require.True(t, scheduler.Tick())
	assert.True(t, scheduler.Pending())
}

func TestSetEnabledKeepsDeniedInitInert(t *testing.T) {
	c, scheduler, _ := newTestController("off", false)
	c.Init(1920, 1080, 1)

	// Init returned before sizing the viewport, so the gate can never pass.
	c.SetEnabled(true)
	assert.False(t, c.Running())
	assert.False(t, scheduler.Pending())
	assert.Zero(t, c.Field.Count())
}
