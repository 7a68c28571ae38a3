// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// controls is one tick of player input, read once and handed to the states.
type controls struct {
	MoveX, MoveY float64
	Dive         bool
	Pause        bool
	Confirm      bool
	Backspace    bool
	Click        bool
	CursorX      int
	CursorY      int
}

func readControls() controls {
	var c controls
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.MoveX++
	}
	// +Y is up in world space
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.MoveY--
	}
	c.Dive = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
	c.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	c.Backspace = inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || repeating(ebiten.KeyBackspace)
	c.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	c.CursorX, c.CursorY = ebiten.CursorPosition()
	return c
}

// repeating fires every few ticks while the key is held, after a short delay.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d >= 30 && d%4 == 0
}
