// internal/state/game_state.go
package state

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-layer-dive/internal/app"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/interfaces"
	"go-layer-dive/internal/ui"
	"go-layer-dive/pkg/render"
)

var (
	_ State                       = (*GameState)(nil)
	_ interfaces.RunStateListener = (*GameState)(nil)
)

// GameState ведёт забег: ввод, тик симуляции и отрисовка.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	fonts       *render.Fonts
	hud         *ui.HUD
	pauseButton *ui.PauseButton
	debug       bool
	runOver     bool
	readInput   func() controls
}

// NewGameState attaches the HUD and the game-over flow to an already started run.
func NewGameState(sm *StateMachine, game *app.Game, fonts *render.Fonts) *GameState {
	hud := ui.NewHUD(fonts)
	g := &GameState{
		sm:    sm,
		game:  game,
		fonts: fonts,
		hud:   hud,
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			12, config.ButtonColor, config.PlayerColor,
		),
		readInput: readControls,
	}
	game.SetHUD(hud)
	game.SetRunStateListener(g)
	return g
}

// SetDebug toggles the debug overlay.
func (g *GameState) SetDebug(on bool) {
	g.debug = on
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	g.step(g.readInput(), deltaTime)
}

func (g *GameState) step(in controls, deltaTime float64) {
	if in.Pause || (in.Click && g.pauseButton.Contains(in.CursorX, in.CursorY) && g.pauseButton.Debounced(time.Now())) {
		g.pause()
		return
	}

	g.game.SetMoveDirection(in.MoveX, in.MoveY)
	// dive input goes in before the tick so it beats the countdown
	if in.Dive {
		g.game.RequestDive()
	} else if in.Click {
		g.hud.HandleClick(in.CursorX, in.CursorY, g.game)
	}
	g.game.Update(deltaTime)
	g.hud.Update(deltaTime)

	if g.runOver {
		g.runOver = false
		g.sm.SetState(NewResultsState(g.sm, g, g.game.LastTally()))
	}
}

func (g *GameState) pause() {
	g.game.Pause()
	g.game.PlayClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g, g.fonts))
}

// Resume leaves the pause screen.
func (g *GameState) Resume() {
	g.game.Unpause()
	g.game.PlayClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(g)
}

// Restart begins another run for the same player.
func (g *GameState) Restart() error {
	g.hud.Reset()
	if err := g.game.Replay(); err != nil {
		return err
	}
	g.sm.SetState(g)
	return nil
}

func (g *GameState) OnDepthAdvanced(wasPenalized bool) {
	if wasPenalized {
		return
	}
	g.hud.ShowMessage(fmt.Sprintf("Depth %d", g.game.ECS.Run.Depth))
}

func (g *GameState) OnTimeExpired() {
	g.runOver = true
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	run := g.game.ECS.Run
	g.game.RenderSystem.Draw(screen, run.GameTime)

	clock := g.game.ECS.Clock
	g.hud.Draw(screen, g.Stats(), clock.Budget)
	g.pauseButton.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  phase %s  shift %s  layers %d",
			ebiten.ActualTPS(), run.Phase, g.game.Transition.Phase(), g.game.Stack.Len()), 10, config.ScreenHeight-20)
	}
}

// Stats собирает текущие значения для HUD.
func (g *GameState) Stats() ui.HUDStats {
	run := g.game.ECS.Run
	charges := g.game.Ledger.TotalThisRun()
	return ui.HUDStats{
		Charges:       g.game.Ledger.Current(),
		TimeRemaining: g.game.ECS.Clock.TimeRemaining,
		GameTime:      run.GameTime,
		Score:         charges * run.Depth,
		BestScore:     g.game.Record.BestScore,
		Speed:         g.game.ECS.Player.MoveSpeed,
		Depth:         run.Depth,
	}
}

func (g *GameState) Exit() {}

func logStateError(what string, err error) {
	if err != nil {
		log.Printf("State: %s: %v", what, err)
	}
}
