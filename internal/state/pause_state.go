// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-layer-dive/internal/config"
	"go-layer-dive/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// resumable is the state a pause returns to.
type resumable interface {
	State
	Resume()
}

type PauseState struct {
	stateMachine  *StateMachine
	previousState resumable
	fonts         *render.Fonts
	readInput     func() controls
}

func NewPauseState(sm *StateMachine, prevState resumable, fonts *render.Fonts) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		fonts:         fonts,
		readInput:     readControls,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	s.step(s.readInput())
}

func (s *PauseState) step(in controls) {
	if in.Pause || in.Click || in.Confirm {
		s.previousState.Resume()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	pauseText := "PAUSED"
	x := (config.ScreenWidth - render.TextWidth(s.fonts.Banner, pauseText)) / 2
	text.Draw(screen, pauseText, s.fonts.Banner, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
