// internal/ui/overlay.go
package ui

import (
	"fmt"

	"go-particle-field/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

const (
	overlayX      = 8
	overlayY      = 8
	overlayWidth  = 210
	lineHeight    = 18
	textMarginX   = 10
	overlayBottom = 8
	fontSize      = 13
)

// Stats — данные для отладочной панели.
type Stats struct {
	Particles int
	TPS       float64
	Running   bool
	Visuals   string
}

// Overlay displays animation diagnostics in the corner of the screen.
type Overlay struct {
	fontFace font.Face
}

// NewOverlay загружает моноширинный шрифт и создаёт панель.
func NewOverlay() (*Overlay, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overlay font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay font face: %w", err)
	}
	return &Overlay{fontFace: face}, nil
}

// Draw отрисовывает панель поверх сцены.
func (o *Overlay) Draw(screen *ebiten.Image, st Stats) {
	state := "stopped"
	if st.Running {
		state = "running"
	}
	lines := []string{
		fmt.Sprintf("particles: %d", st.Particles),
		fmt.Sprintf("tps:       %.0f", st.TPS),
		fmt.Sprintf("visuals:   %s", st.Visuals),
		fmt.Sprintf("state:     %s", state),
	}

	height := float32(len(lines)*lineHeight + overlayBottom*2)
	vector.DrawFilledRect(screen, overlayX, overlayY, overlayWidth, height, config.OverlayBgColor, false)

	y := overlayY + overlayBottom + lineHeight - 4
	for _, line := range lines {
		text.Draw(screen, line, o.fontFace, overlayX+textMarginX, y, config.TextLightColor)
		y += lineHeight
	}
}
