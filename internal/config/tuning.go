package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningEnv names the environment variable consulted when no tuning path is given.
const TuningEnv = "DIVE_TUNING"

// Tuning holds every gameplay number that designers may want to tweak
// without a rebuild.
type Tuning struct {
	Economy EconomyTuning `yaml:"economy"`
	Stack   StackTuning   `yaml:"stack"`
	Timer   TimerTuning   `yaml:"timer"`
	Player  PlayerTuning  `yaml:"player"`
}

type EconomyTuning struct {
	BaseDiveCost      int     `yaml:"base_dive_cost"`
	DiveCostIncrement int     `yaml:"dive_cost_increment"`
	BaseRewards       int     `yaml:"base_rewards"`
	RewardDecay       float64 `yaml:"reward_decay"`
	BaseTime          float64 `yaml:"base_time"`
	TimeReduction     float64 `yaml:"time_reduction"`
	MinTime           float64 `yaml:"min_time"`
	PenaltyTimeFactor float64 `yaml:"penalty_time_factor"`
	PenaltyReward     float64 `yaml:"penalty_reward_factor"`
}

type StackTuning struct {
	MaxLayers     int     `yaml:"max_layers"`
	LayerSpacing  float64 `yaml:"layer_spacing"`
	ShiftDuration float64 `yaml:"shift_duration"`
	SpawnRadius   float64 `yaml:"spawn_radius"`
}

type TimerTuning struct {
	WarningThreshold float64 `yaml:"warning_threshold"`
	IntroDelay       float64 `yaml:"intro_delay"`
}

type PlayerTuning struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	BoostAmount   float64 `yaml:"boost_amount"`
	MaxSpeed      float64 `yaml:"max_speed"`
	BoostDuration float64 `yaml:"boost_duration"`
}

// DefaultTuning returns the values the game ships with.
func DefaultTuning() Tuning {
	return Tuning{
		Economy: EconomyTuning{
			BaseDiveCost:      10,
			DiveCostIncrement: 5,
			BaseRewards:       100,
			RewardDecay:       0.9,
			BaseTime:          30,
			TimeReduction:     2,
			MinTime:           10,
			PenaltyTimeFactor: 0.7,
			PenaltyReward:     0.8,
		},
		Stack: StackTuning{
			MaxLayers:     MaxLayers,
			LayerSpacing:  LayerSpacing,
			ShiftDuration: ShiftDuration,
			SpawnRadius:   SpawnRadius,
		},
		Timer: TimerTuning{
			WarningThreshold: WarningThreshold,
			IntroDelay:       IntroDelay,
		},
		Player: PlayerTuning{
			BaseSpeed:     40,
			BoostAmount:   3,
			MaxSpeed:      80,
			BoostDuration: 6,
		},
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning, so a file
// only needs the keys it overrides. If path == "", TuningEnv is consulted;
// with neither set the defaults are returned.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		path = os.Getenv(TuningEnv)
		if path == "" {
			return t, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// ErrInvalidTuning wraps every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values no game loop could run with.
func (t Tuning) Validate() error {
	e := t.Economy
	switch {
	case e.BaseDiveCost < 0 || e.DiveCostIncrement < 0:
		return fmt.Errorf("%w: dive cost must not be negative", ErrInvalidTuning)
	case e.BaseRewards < 0:
		return fmt.Errorf("%w: base rewards must not be negative", ErrInvalidTuning)
	case e.RewardDecay <= 0:
		return fmt.Errorf("%w: reward decay must be positive", ErrInvalidTuning)
	case e.MinTime <= 0 || e.BaseTime < e.MinTime:
		return fmt.Errorf("%w: time budget bounds", ErrInvalidTuning)
	case e.TimeReduction < 0:
		return fmt.Errorf("%w: time reduction must not be negative", ErrInvalidTuning)
	case e.PenaltyTimeFactor <= 0 || e.PenaltyTimeFactor > 1:
		return fmt.Errorf("%w: penalty time factor must be in (0,1]", ErrInvalidTuning)
	case e.PenaltyReward < 0 || e.PenaltyReward > 1:
		return fmt.Errorf("%w: penalty reward factor must be in [0,1]", ErrInvalidTuning)
	}
	s := t.Stack
	switch {
	case s.MaxLayers < 2:
		return fmt.Errorf("%w: stack needs at least two layers", ErrInvalidTuning)
	case s.LayerSpacing <= 0 || s.ShiftDuration <= 0 || s.SpawnRadius < 0:
		return fmt.Errorf("%w: stack geometry", ErrInvalidTuning)
	}
	if t.Timer.WarningThreshold < 0 || t.Timer.IntroDelay < 0 {
		return fmt.Errorf("%w: timer thresholds must not be negative", ErrInvalidTuning)
	}
	p := t.Player
	if p.BaseSpeed <= 0 || p.MaxSpeed < p.BaseSpeed || p.BoostAmount < 0 || p.BoostDuration < 0 {
		return fmt.Errorf("%w: player speed", ErrInvalidTuning)
	}
	return nil
}
