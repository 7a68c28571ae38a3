// internal/component/player.go
package component

// Player хранит состояние персонажа на активном слое.
type Player struct {
	Position  Vec3
	Velocity  Velocity
	Direction Velocity // normalised input direction, zero when idle
	Facing    float64  // radians, smoothed toward Direction
	MoveSpeed float64
	Boosts    []SpeedBoost // active pickup boosts, oldest first
}

// SpeedBoost is a temporary move-speed bonus granted by a pickup.
type SpeedBoost struct {
	Amount    float64
	Remaining float64
}
