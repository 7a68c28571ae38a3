// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"go-layer-dive/internal/audio"
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/entity"
	"go-layer-dive/internal/event"
	"go-layer-dive/internal/interfaces"
	"go-layer-dive/internal/storage"
	"go-layer-dive/internal/system"
	"go-layer-dive/internal/utils"
)

const storeTimeout = 2 * time.Second

// TimeWarningMessage is shown once per layer when time is running low.
const TimeWarningMessage = "Hurry! The layer is collapsing"

var _ interfaces.Game = (*Game)(nil)

// Options configures a new Game. Nil collaborators fall back to silent ones.
type Options struct {
	Tuning config.Tuning
	Pool   *defs.Pool
	Seed   int64
	Store  storage.ScoreStore
	Sound  interfaces.SoundPlayer
	HUD    interfaces.HUD
}

// Tally is the result of a finished run.
type Tally struct {
	RunID          uuid.UUID
	Score          int // charges collected this run times depth reached
	Depth          int
	Charges        int
	IsNewHighScore bool
}

// Game holds the run context: every service of a run and the order in which
// they are ticked.
type Game struct {
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	Tuning             config.Tuning
	Pool               *defs.Pool
	Economy            *system.Economy
	Stack              *system.LayerStack
	Transition         *system.DiveTransition
	Timer              *system.RunTimer
	Ledger             *system.ResourceLedger
	Camera             *system.CameraSystem
	PlayerSystem       *system.PlayerSystem
	PickupSystem       *system.PickupSystem
	VisualEffectSystem *system.VisualEffectSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem
	Noise              *utils.NoiseField
	Record             storage.ScoreRecord
	RunID              uuid.UUID

	store       storage.ScoreStore
	sound       interfaces.SoundPlayer
	hud         interfaces.HUD
	runListener interfaces.RunStateListener
	lastTally   Tally
}

// NewGame wires all services. It loads the score record from the store.
func NewGame(opts Options) (*Game, error) {
	if opts.Pool == nil {
		panic("pool cannot be nil")
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, err
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.HUD == nil {
		opts.HUD = nopHUD{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Tuning:          opts.Tuning,
		Pool:            opts.Pool,
		Economy:         system.NewEconomy(opts.Tuning.Economy),
		Ledger:          system.NewResourceLedger(ecs),
		Camera:          system.NewCameraSystem(component.Vec3{Z: -config.CameraDistance}),
		Noise:           utils.NewNoiseField(rng.Seed()),
		store:           opts.Store,
		sound:           opts.Sound,
		hud:             opts.HUD,
		runListener:     nopRunListener{},
	}
	g.Stack = system.NewLayerStack(ecs, opts.Pool, rng, opts.Tuning.Stack)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.Stack, opts.Tuning.Player, opts.Tuning.Stack.SpawnRadius*1.2)
	g.Transition = system.NewDiveTransition(ecs, g.Stack, g.Camera, g.PlayerSystem, eventDispatcher, opts.Tuning.Stack.ShiftDuration)
	g.Timer = system.NewRunTimer(ecs, g.Transition, eventDispatcher, opts.Tuning.Timer.WarningThreshold)
	g.PickupSystem = system.NewPickupSystem(ecs, g.Stack, g.Ledger, g.PlayerSystem, g.Transition, opts.Sound, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, g.Noise)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs, g.Stack, g.Camera, opts.Pool)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LayerShifted, listener)
	eventDispatcher.Subscribe(event.TimeWarning, listener)
	eventDispatcher.Subscribe(event.ShiftFailed, listener)

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	rec, err := opts.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load score record: %w", err)
	}
	g.Record = rec
	return g, nil
}

// SetRunStateListener registers the collaborator that owns the game-over flow.
func (g *Game) SetRunStateListener(l interfaces.RunStateListener) {
	if l == nil {
		l = nopRunListener{}
	}
	g.runListener = l
}

// SetHUD replaces the HUD collaborator.
func (g *Game) SetHUD(h interfaces.HUD) {
	if h == nil {
		h = nopHUD{}
	}
	g.hud = h
}

// StartRun resets the session and builds a fresh stack. The countdown starts
// after the intro delay.
func (g *Game) StartRun() error {
	econ := g.Economy.Compute(1, false)
	g.Stack.SetOrigin(component.Vec3{})
	if err := g.Stack.GenerateInitialStack(g.Tuning.Stack.MaxLayers, econ.RewardQuantity); err != nil {
		return fmt.Errorf("start run: %w", err)
	}

	g.Transition.Reset()
	g.Timer.Stop()
	g.Ledger.Reset()
	g.Record.ResetSession()
	*g.ECS.Run = component.RunState{
		Phase:      component.RunIntro,
		Depth:      1,
		IntroTimer: g.Tuning.Timer.IntroDelay,
		Economy:    econ,
	}

	anchor := g.Stack.Anchor()
	g.PlayerSystem.Spawn(anchor)
	g.Camera.SnapTo(anchor.Sub(g.Camera.Forward().Scale(config.CameraDistance)))

	g.RunID = uuid.New()
	log.Printf("Run %s started (replay %d)", g.RunID, g.Record.Replays)
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunStarted, Data: g.RunID})
	return nil
}

// ActivateRun ends the intro: dives are allowed and the countdown starts.
func (g *Game) ActivateRun() {
	run := g.ECS.Run
	if run.Phase != component.RunIntro {
		return
	}
	run.Phase = component.RunActive
	run.Economy = g.Economy.Compute(run.Depth, false)
	g.Timer.Reset(run.Economy.TimeBudget)
	g.updateEconomyDisplay()
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunActivated})
}

// RequestDive tries to dive to the next layer. Requests are dropped while
// the run is not accepting input or a shift is already in flight.
func (g *Game) RequestDive() {
	run := g.ECS.Run
	if !run.Running() || run.InputSuspended || !g.Transition.CanShift() {
		return
	}

	charged, penalized := g.Ledger.AuthorizeDive()
	if penalized {
		g.hud.ShowPenaltyNotice(config.PenaltyNotice)
		g.EventDispatcher.Dispatch(event.Event{Type: event.DivePenalized})
	}

	started, err := g.Transition.RequestShift(penalized)
	if err != nil || !started {
		return
	}
	log.Printf("Dive from depth %d (charged=%v penalized=%v)", run.Depth, charged, penalized)
	g.sound.PlaySound(defs.SoundLayerShift)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.DiveStarted,
		Data: event.DiveInfo{FromDepth: run.Depth, Penalized: penalized},
	})
}

// EndRun handles the expiry of the layer timer.
func (g *Game) EndRun() {
	g.ECS.Run.Phase = component.RunOver
	g.Timer.Stop()
	g.sound.PlaySound(defs.SoundTimeExpired)
	g.hud.ShowWarning(config.TimerExpiredMessage)

	tally := g.Tally()
	g.saveRecord()
	log.Printf("Run %s ended at depth %d, score %d (new best: %v)", g.RunID, tally.Depth, tally.Score, tally.IsNewHighScore)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.RunEnded,
		Data: event.RunSummary{Depth: tally.Depth, Score: tally.Score},
	})
	g.runListener.OnTimeExpired()
}

// Tally computes the final result and folds it into the score record.
// Calling it twice for the same run yields the same tally.
func (g *Game) Tally() Tally {
	if g.lastTally.RunID == g.RunID && g.RunID != uuid.Nil {
		return g.lastTally
	}

	run := g.ECS.Run
	t := Tally{
		RunID:   g.RunID,
		Depth:   run.Depth,
		Charges: g.Ledger.TotalThisRun(),
	}
	t.Score = t.Charges * t.Depth
	t.IsNewHighScore = t.Score > g.Record.BestScore

	rec := &g.Record
	rec.Score = t.Score
	if t.IsNewHighScore {
		rec.BestScore = t.Score
	}
	if rec.LevelsCompletedThisRun > rec.BestLevelsCompleted {
		rec.BestLevelsCompleted = rec.LevelsCompletedThisRun
	}
	rec.TotalGameTime += run.GameTime
	rec.LastRunID = g.RunID.String()

	g.lastTally = t
	return t
}

// LastTally returns the tally of the most recent finished run.
func (g *Game) LastTally() Tally {
	return g.lastTally
}

// Replay starts another run for the same player.
func (g *Game) Replay() error {
	g.Record.Replays++
	return g.StartRun()
}

// SetPlayerName stores the name used for the score record.
func (g *Game) SetPlayerName(name string) {
	if name == "" {
		name = storage.DefaultPlayerName
	}
	g.Record.PlayerName = name
	g.saveRecord()
}

func (g *Game) Pause() {
	g.ECS.Run.Paused = true
	g.ECS.Run.InputSuspended = true
}

func (g *Game) Unpause() {
	g.ECS.Run.Paused = false
	g.ECS.Run.InputSuspended = false
}

func (g *Game) IsPaused() bool {
	return g.ECS.Run.Paused
}

// PlayClick plays the menu click sound.
func (g *Game) PlayClick() {
	g.sound.PlaySound(defs.SoundMenuClick)
}

// SetMoveDirection forwards the input direction to the player.
func (g *Game) SetMoveDirection(x, y float64) {
	g.PlayerSystem.SetDirection(x, y)
}

// Update ticks every system once. Dive input must be delivered through
// RequestDive before Update so a dive started this tick beats the clock.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.ECS.Run.Paused {
		return
	}

	g.PlayerSystem.Update(deltaTime)
	g.PickupSystem.Update(deltaTime)
	g.Transition.Update(deltaTime)
	g.Camera.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.Timer.Update(deltaTime)
	// last, so the countdown starts on the tick after the intro ends
	g.StateSystem.Update(deltaTime)
}

// Close persists the record and releases the store.
func (g *Game) Close() error {
	g.saveRecord()
	return g.store.Close()
}

func (g *Game) onLayerShifted(penalized bool) {
	run := g.ECS.Run
	run.Depth++
	g.Record.LevelsCompletedThisRun++
	run.Economy = g.Economy.Compute(run.Depth, penalized)
	g.Timer.Reset(run.Economy.TimeBudget)

	if bottom, ok := g.Transition.Bottom(); ok {
		if err := g.Stack.SpawnRewards(bottom, run.Economy.RewardQuantity); err != nil {
			log.Printf("Game: rewards for depth %d not spawned: %v", run.Depth, err)
		}
	}
	g.updateEconomyDisplay()
	g.runListener.OnDepthAdvanced(penalized)
}

func (g *Game) updateEconomyDisplay() {
	e := g.ECS.Run.Economy
	g.hud.UpdateEconomyDisplay(e.DiveCost, e.RewardQuantity, e.NextDiveCost, e.NextTimeBudget)
}

func (g *Game) saveRecord() {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := g.store.Save(ctx, g.Record); err != nil {
		log.Printf("Game: failed to save score record: %v", err)
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LayerShifted:
		if data, ok := e.Data.(event.LayerShiftedData); ok {
			l.game.onLayerShifted(data.Penalized)
		}
	case event.TimeWarning:
		l.game.hud.ShowWarning(TimeWarningMessage)
		l.game.sound.PlaySound(defs.SoundTimeWarning)
	case event.ShiftFailed:
		log.Printf("Game: dive aborted at depth %d: %v", l.game.ECS.Run.Depth, e.Data)
	}
}

type nopHUD struct{}

func (nopHUD) UpdateEconomyDisplay(int, int, int, float64) {}
func (nopHUD) ShowWarning(string)                          {}
func (nopHUD) ShowPenaltyNotice(string)                    {}

type nopRunListener struct{}

func (nopRunListener) OnDepthAdvanced(bool) {}
func (nopRunListener) OnTimeExpired()       {}
