// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"go-layer-dive/internal/app"
	"go-layer-dive/internal/audio"
	"go-layer-dive/internal/config"
	"go-layer-dive/internal/defs"
	"go-layer-dive/internal/interfaces"
	"go-layer-dive/internal/metrics"
	"go-layer-dive/internal/state"
	"go-layer-dive/internal/storage"
	"go-layer-dive/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML file (defaults to $DIVE_TUNING, then built-in values)")
	poolPath := flag.String("pool", "", "layer/cluster pool YAML file (defaults to the embedded pool)")
	dataPath := flag.String("data", "data", "score record directory; empty keeps scores in memory")
	seed := flag.Int64("seed", 0, "world seed; 0 picks one from the clock")
	debugAddr := flag.String("debug-addr", "localhost:6060", "pprof and /metrics listen address; empty disables")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal(err)
	}
	pool, err := defs.LoadPool(*poolPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var store storage.ScoreStore = storage.NewMemoryStore()
	if *dataPath != "" {
		bs, err := storage.NewBadgerStore(*dataPath)
		if err != nil {
			log.Fatal(err)
		}
		store = bs
	}

	var sound interfaces.SoundPlayer = audio.Silent{}
	if !*mute {
		bank := audio.NewSoundBank(defs.SoundBank)
		if err := bank.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer bank.Cleanup()
			sound = bank
		}
	}

	game, err := app.NewGame(app.Options{
		Tuning: tuning,
		Pool:   pool,
		Seed:   *seed,
		Store:  store,
		Sound:  sound,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.Printf("Failed to close score store: %v", err)
		}
	}()

	if *debugAddr != "" {
		metrics.NewRecorder(prometheus.DefaultRegisterer).Attach(game.EventDispatcher)
		http.Handle("/metrics", metrics.Handler(prometheus.DefaultGatherer))
		go func() {
			log.Println(http.ListenAndServe(*debugAddr, nil))
		}()
	}

	fonts, err := render.LoadFonts()
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	menu := state.NewMenuState(sm, game, fonts)
	menu.SetDebug(*debugAddr != "")
	sm.SetState(menu)

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Layer Dive")
	log.Printf("Starting with seed %d", *seed)
	if err := ebiten.RunGame(a); err != nil {
		log.Printf("Game loop stopped: %v", err)
	}
}
