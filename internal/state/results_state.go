// internal/state/results_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-layer-dive/internal/app"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/ui"
	"go-layer-dive/pkg/render"
)

var _ State = (*ResultsState)(nil)

// ResultsState shows the tally of a finished run and offers a replay.
type ResultsState struct {
	sm        *StateMachine
	game      *GameState
	tally     app.Tally
	replay    *ui.Button
	hovered   bool
	readInput func() controls
}

func NewResultsState(sm *StateMachine, game *GameState, tally app.Tally) *ResultsState {
	w, h := 200, 44
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 120
	return &ResultsState{
		sm:        sm,
		game:      game,
		tally:     tally,
		replay:    ui.NewButton(image.Rect(x, y, x+w, y+h), "Replay", game.fonts.Title),
		readInput: readControls,
	}
}

func (s *ResultsState) Enter() {}

func (s *ResultsState) Update(deltaTime float64) {
	s.step(s.readInput())
}

func (s *ResultsState) step(in controls) {
	s.hovered = s.replay.Contains(in.CursorX, in.CursorY)
	if in.Confirm || in.Dive || (in.Click && s.hovered) {
		s.game.game.PlayClick()
		logStateError("replay", s.game.Restart())
	}
}

// Lines renders the result text.
func (s *ResultsState) Lines() []string {
	rec := s.game.game.Record
	lines := []string{
		config.TimerExpiredMessage,
		fmt.Sprintf("%s reached depth %d", rec.PlayerName, s.tally.Depth),
		fmt.Sprintf("Charges collected: %d", s.tally.Charges),
		fmt.Sprintf("Score: %d", s.tally.Score),
		fmt.Sprintf("Best: %d  Best layers: %d", rec.BestScore, rec.BestLevelsCompleted),
	}
	if s.tally.IsNewHighScore {
		lines = append(lines, "New high score!")
	}
	return lines
}

func (s *ResultsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fonts := s.game.fonts
	y := config.ScreenHeight/2 - 120
	for i, line := range s.Lines() {
		face := fonts.Title
		c := config.TextLightColor
		if i == 0 {
			face = fonts.Banner
			c = config.WarningColor
		}
		x := (config.ScreenWidth - render.TextWidth(face, line)) / 2
		text.Draw(screen, line, face, x, y, c)
		y += 40
	}
	s.replay.Draw(screen, s.hovered)
}

func (s *ResultsState) Exit() {}
