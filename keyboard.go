package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"circlegame/internal/input"
)

// keyboard reads the live ebiten input state. ebiten has no event queue to
// drain; the only window event the loop cares about is the close request,
// which ebiten reports as a flag once SetWindowClosingHandled is on.
type keyboard struct{}

func (keyboard) Events() []input.Event {
	if ebiten.IsWindowBeingClosed() {
		return []input.Event{input.EventQuit}
	}
	return nil
}

func (keyboard) Directions() input.Directions {
	return input.Directions{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}
