// internal/app/gate_test.go
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRunWidthThreshold(t *testing.T) {
	// For width <= 640 the gate must deny regardless of other inputs.
	for _, reduced := range []bool{false, true} {
		for _, visuals := range []string{"", "on", "off", "fancy"} {
			assert.False(t, ShouldRun(reduced, 640, visuals))
			assert.False(t, ShouldRun(reduced, 600, visuals))
			assert.False(t, ShouldRun(reduced, 0, visuals))
		}
	}
	assert.True(t, ShouldRun(false, 641, "on"))
}

func TestShouldRunReducedMotion(t *testing.T) {
	assert.False(t, ShouldRun(true, 1920, "on"))
	assert.True(t, ShouldRun(false, 1920, "on"))
}

func TestShouldRunVisualsAttribute(t *testing.T) {
	assert.False(t, ShouldRun(false, 1920, "off"))
	// Unset and arbitrary values are treated as enabled.
	assert.True(t, ShouldRun(false, 1920, ""))
	assert.True(t, ShouldRun(false, 1920, "on"))
	assert.True(t, ShouldRun(false, 1920, "anything"))
}
