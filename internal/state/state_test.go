package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-layer-dive/internal/app"
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/pkg/render"
)

const tick = 0.05

func newMenu(t *testing.T) (*StateMachine, *MenuState) {
	t.Helper()
	pool, err := defs.LoadPool("")
	require.NoError(t, err)
	game, err := app.NewGame(app.Options{Tuning: config.DefaultTuning(), Pool: pool, Seed: 3})
	require.NoError(t, err)
	fonts, err := render.LoadFonts()
	require.NoError(t, err)

	sm := NewStateMachine()
	menu := NewMenuState(sm, game, fonts)
	sm.SetState(menu)
	return sm, menu
}

func startGame(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	sm, menu := newMenu(t)
	menu.step(controls{Confirm: true})
	gs, ok := sm.Current().(*GameState)
	require.True(t, ok, "confirming the menu starts a run")
	return sm, gs
}

func TestMenuStartsRunWithName(t *testing.T) {
	sm, menu := newMenu(t)
	menu.name.Type([]rune("Kai"))

	menu.step(controls{})
	assert.Same(t, menu, sm.Current(), "no input keeps the menu")

	menu.step(controls{Confirm: true})
	require.IsType(t, &GameState{}, sm.Current())
	assert.Equal(t, "DiverKai", menu.game.Record.PlayerName)
	assert.Equal(t, component.RunIntro, menu.game.ECS.Run.Phase)
}

func TestPauseAndResume(t *testing.T) {
	sm, gs := startGame(t)

	gs.step(controls{Pause: true}, tick)
	assert.True(t, gs.game.IsPaused())
	pause, ok := sm.Current().(*PauseState)
	require.True(t, ok)

	pause.step(controls{})
	assert.True(t, gs.game.IsPaused())

	pause.step(controls{Pause: true})
	assert.False(t, gs.game.IsPaused())
	assert.Same(t, gs, sm.Current())
}

func TestDiveKeyStartsShift(t *testing.T) {
	_, gs := startGame(t)
	for gs.game.ECS.Run.Phase != component.RunActive {
		gs.step(controls{}, tick)
	}

	gs.step(controls{Dive: true}, tick)
	assert.True(t, gs.game.Transition.IsShifting())
}

func TestDepthBanner(t *testing.T) {
	_, gs := startGame(t)
	gs.game.ECS.Run.Depth = 3

	gs.OnDepthAdvanced(false)
	require.Len(t, gs.hud.Banners(), 1)
	assert.Equal(t, "Depth 3", gs.hud.Banners()[0].Text)

	gs.OnDepthAdvanced(true)
	assert.Len(t, gs.hud.Banners(), 1, "penalised dives already show the penalty notice")
}

func TestExpiryShowsResultsAndReplay(t *testing.T) {
	sm, gs := startGame(t)

	for i := 0; i < 10000; i++ {
		if _, done := sm.Current().(*ResultsState); done {
			break
		}
		gs.step(controls{}, tick)
	}
	results, ok := sm.Current().(*ResultsState)
	require.True(t, ok, "the run ends when the layer timer expires")
	assert.Equal(t, component.RunOver, gs.game.ECS.Run.Phase)
	assert.Contains(t, results.Lines(), config.TimerExpiredMessage)
	assert.Equal(t, 1, results.tally.Depth)

	results.step(controls{Confirm: true})
	assert.Same(t, gs, sm.Current())
	assert.Equal(t, 1, gs.game.Record.Replays)
	assert.Equal(t, component.RunIntro, gs.game.ECS.Run.Phase)
}

func TestStateMachineCallsEnterAndExit(t *testing.T) {
	sm := NewStateMachine()
	a, b := &recordingState{}, &recordingState{}

	sm.SetState(a)
	sm.SetState(b)
	sm.Update(tick)

	assert.Equal(t, 1, a.enters)
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, 1, b.updates)
	assert.Nil(t, NewStateMachine().Current())
}

type recordingState struct {
	enters, exits, updates int
}

func (s *recordingState) Enter()              { s.enters++ }
func (s *recordingState) Update(float64)      { s.updates++ }
func (s *recordingState) Exit()               { s.exits++ }
func (s *recordingState) Draw(*ebiten.Image) {}
