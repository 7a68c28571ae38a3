// internal/system/ledger.go
package system

import (
	"go-layer-dive/internal/entity"
)

// ResourceLedger tracks the player's charges. It is mutated only through
// its methods.
type ResourceLedger struct {
	ecs          *entity.ECS
	current      int
	totalThisRun int
}

// NewResourceLedger reads the dive cost from the run's current economy.
func NewResourceLedger(ecs *entity.ECS) *ResourceLedger {
	return &ResourceLedger{ecs: ecs}
}

// AuthorizeDive spends the current dive cost. A dive is never refused:
// without enough charges the balance drops to zero and the dive is penalised.
// charged reports whether any charges were removed.
func (l *ResourceLedger) AuthorizeDive() (charged, wasPenalized bool) {
	cost := l.ecs.Run.Economy.DiveCost
	if l.current >= cost {
		l.current -= cost
		return cost > 0, false
	}
	charged = l.current > 0
	l.current = 0
	return charged, true
}

// CollectReward adds to both the balance and the run total. Non-positive
// amounts are ignored.
func (l *ResourceLedger) CollectReward(amount int) {
	if amount <= 0 {
		return
	}
	l.current += amount
	l.totalThisRun += amount
}

// Reset clears both counters at run start.
func (l *ResourceLedger) Reset() {
	l.current = 0
	l.totalThisRun = 0
}

func (l *ResourceLedger) Current() int {
	return l.current
}

func (l *ResourceLedger) TotalThisRun() int {
	return l.totalThisRun
}
