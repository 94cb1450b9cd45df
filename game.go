package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"circlegame/internal/config"
	"circlegame/internal/input"
	"circlegame/internal/loop"
)

// --- Colors ---
var (
	ColBg     = color.RGBA{0x00, 0x00, 0x00, 0xff} // Black
	ColCircle = color.RGBA{0xff, 0x00, 0x00, 0xff} // Red
)

// Game adapts the loop controller to ebiten.Game
type Game struct {
	ctrl   *loop.Controller
	input  input.Source
	width  int
	height int
	debug  bool
}

func NewGame(cfg config.Config, ctrl *loop.Controller) *Game {
	return &Game{
		ctrl:   ctrl,
		input:  keyboard{},
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		debug:  cfg.Debug,
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	// A quit seen last frame was already drawn, stop now
	if !g.ctrl.Running() {
		return ebiten.Termination
	}

	g.ctrl.Step(g.input)
	return nil
}

// Draw: Rendering
func (g *Game) Draw(screen *ebiten.Image) {
	// 1. Clear Screen
	screen.Fill(ColBg)

	// 2. Circle
	c := g.ctrl.Circle()
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.Radius), ColCircle, true)

	// 3. Debug overlay
	if g.debug {
		msg := fmt.Sprintf("TPS: %0.1f\nFPS: %0.1f\nPos: (%d, %d)\nFrame: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), c.X, c.Y, g.ctrl.Frames())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout: fixed surface, the window is not resizable
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
