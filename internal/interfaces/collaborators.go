// internal/interfaces/collaborators.go
package interfaces

import (
	"go-layer-dive/internal/component"
	"go-layer-dive/internal/defs"
)

// CameraMover moves the camera toward a depth target over a duration.
type CameraMover interface {
	FollowDepthTarget(pos component.Vec3, duration float64)
	Forward() component.Vec3
}

// PlayerMover gives the transition access to the player position.
type PlayerMover interface {
	Position() component.Vec3
	SetPosition(pos component.Vec3)
}

// SoundPlayer plays one-shot effects.
type SoundPlayer interface {
	PlaySound(id defs.SoundID)
}

// HUD displays economy numbers and transient notices.
type HUD interface {
	UpdateEconomyDisplay(diveCost, rewardCount, nextDiveCost int, nextTimeBudget float64)
	ShowWarning(msg string)
	ShowPenaltyNotice(msg string)
}
