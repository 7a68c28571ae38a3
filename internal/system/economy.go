// internal/system/economy.go
package system

import (
	"math"

	"go-layer-dive/internal/component"
	"go-layer-dive/internal/config"
)

// floorEpsilon absorbs float error such as 100*0.9^2 = 80.99999999999999.
const floorEpsilon = 1e-9

// Economy computes dive cost, time budget and reward density per depth.
// It holds only tuning and has no state of its own.
type Economy struct {
	tuning config.EconomyTuning
}

func NewEconomy(tuning config.EconomyTuning) *Economy {
	return &Economy{tuning: tuning}
}

// Compute derives the economy for depth d. Depths below 1 are treated as 1.
// Lookahead values are for depth d+1 and never penalised.
func (e *Economy) Compute(depth int, penalized bool) component.EconomyState {
	if depth < 1 {
		depth = 1
	}
	steps := depth - 1

	rewards := e.rewardQuantity(steps)
	if penalized {
		rewards = int(math.Floor(float64(rewards)*e.tuning.PenaltyReward + floorEpsilon))
	}

	return component.EconomyState{
		Depth:          depth,
		DiveCost:       e.diveCost(steps),
		TimeBudget:     e.timeBudget(steps, penalized),
		RewardQuantity: rewards,
		NextDiveCost:   e.diveCost(steps + 1),
		NextTimeBudget: e.timeBudget(steps+1, false),
	}
}

func (e *Economy) diveCost(steps int) int {
	return e.tuning.BaseDiveCost + e.tuning.DiveCostIncrement*steps
}

func (e *Economy) rewardQuantity(steps int) int {
	q := float64(e.tuning.BaseRewards) * math.Pow(e.tuning.RewardDecay, float64(steps))
	return int(math.Floor(q + floorEpsilon))
}

// timeBudget applies the penalty before clamping to the minimum, so a
// penalised budget can sit below the unpenalised one but never below MinTime.
func (e *Economy) timeBudget(steps int, penalized bool) float64 {
	t := e.tuning.BaseTime - e.tuning.TimeReduction*float64(steps)
	if penalized {
		t *= e.tuning.PenaltyTimeFactor
	}
	return math.Max(e.tuning.MinTime, t)
}
