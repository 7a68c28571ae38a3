// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-layer-dive/internal/app"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/ui"
	"go-layer-dive/pkg/render"
)

const maxNameLength = 16

var _ State = (*MenuState)(nil)

// MenuState показывает экран ввода имени перед первым забегом.
type MenuState struct {
	sm        *StateMachine
	game      *app.Game
	fonts     *render.Fonts
	name      *ui.TextField
	start     *ui.Button
	hovered   bool
	debug     bool
	readInput func() controls
}

func NewMenuState(sm *StateMachine, game *app.Game, fonts *render.Fonts) *MenuState {
	w := 300
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight / 2
	return &MenuState{
		sm:        sm,
		game:      game,
		fonts:     fonts,
		name:      ui.NewTextField(x, y, w, maxNameLength, game.Record.PlayerName, fonts.Title),
		start:     ui.NewButton(image.Rect(x+50, y+70, x+w-50, y+114), "Dive", fonts.Title),
		readInput: readControls,
	}
}

// SetDebug is passed on to the game state.
func (m *MenuState) SetDebug(on bool) {
	m.debug = on
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	in := m.readInput()
	m.name.Update(deltaTime, in.Backspace)
	m.step(in)
}

func (m *MenuState) step(in controls) {
	m.hovered = m.start.Contains(in.CursorX, in.CursorY)
	if !in.Confirm && !(in.Click && m.hovered) {
		return
	}
	m.game.PlayClick()
	m.game.SetPlayerName(m.name.Value())
	if err := m.game.StartRun(); err != nil {
		logStateError("start run", err)
		return
	}
	gs := NewGameState(m.sm, m.game, m.fonts)
	gs.SetDebug(m.debug)
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "Layer Dive"
	text.Draw(screen, title, m.fonts.Banner, (config.ScreenWidth-render.TextWidth(m.fonts.Banner, title))/2, config.ScreenHeight/2-120, config.PlayerColor)
	prompt := "Enter your name"
	text.Draw(screen, prompt, m.fonts.Regular, (config.ScreenWidth-render.TextWidth(m.fonts.Regular, prompt))/2, config.ScreenHeight/2-16, config.TextLightColor)
	m.name.Draw(screen)
	m.start.Draw(screen, m.hovered)
}

func (m *MenuState) Exit() {}
