package marquee

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	ShowFPS   bool
	Resizable bool
	Debug     bool
}

// Run opens a window and runs the stage until the window closes.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 720, 900
	}
	if cfg.Title == "" {
		cfg.Title = "Marquee"
	}
	stage.ShowFPS = cfg.ShowFPS
	stage.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	defer stage.Unmount()
	if err := ebiten.RunGame(stage); err != nil {
		return fmt.Errorf("run stage: %w", err)
	}
	return nil
}
