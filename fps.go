package marquee

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsPanel is the scratch image for the FPS overlay. 100x32 is enough for
// "FPS: 60.0\nTPS: 60.0".
var fpsPanel *ebiten.Image

// drawFPS renders the current FPS and TPS in the top-right corner.
func drawFPS(screen *ebiten.Image, width float64) {
	if fpsPanel == nil {
		fpsPanel = ebiten.NewImage(100, 32)
	}
	fpsPanel.Clear()
	// Semi-transparent background for readability
	fpsPanel.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(fpsPanel, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(width-100-8, 8)
	screen.DrawImage(fpsPanel, &op)
}
