// internal/defs/sounds.go
package defs

import "time"

// SoundID enumerates every sound effect the game can trigger.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundLayerShift
	SoundCollectPickup
	SoundTimeWarning
	SoundTimeExpired
	SoundMenuClick
)

func (s SoundID) String() string {
	switch s {
	case SoundLayerShift:
		return "LayerShift"
	case SoundCollectPickup:
		return "CollectPickup"
	case SoundTimeWarning:
		return "TimeWarning"
	case SoundTimeExpired:
		return "TimeExpired"
	case SoundMenuClick:
		return "MenuClick"
	default:
		return "None"
	}
}

// SoundDefinition describes a synthesised effect: a tone sweeping from
// FromHz to ToHz over Duration.
type SoundDefinition struct {
	FromHz   float64
	ToHz     float64
	Duration time.Duration
	Volume   float64 // linear gain, 0..1
	Cooldown time.Duration
}

// SoundBank maps every SoundID to its definition.
var SoundBank = map[SoundID]SoundDefinition{
	SoundLayerShift:    {FromHz: 420, ToHz: 90, Duration: 900 * time.Millisecond, Volume: 0.45, Cooldown: 120 * time.Millisecond},
	SoundCollectPickup: {FromHz: 880, ToHz: 1320, Duration: 70 * time.Millisecond, Volume: 0.25, Cooldown: 40 * time.Millisecond},
	SoundTimeWarning:   {FromHz: 660, ToHz: 660, Duration: 250 * time.Millisecond, Volume: 0.35, Cooldown: time.Second},
	SoundTimeExpired:   {FromHz: 330, ToHz: 110, Duration: 1200 * time.Millisecond, Volume: 0.5, Cooldown: time.Second},
	SoundMenuClick:     {FromHz: 1200, ToHz: 1000, Duration: 40 * time.Millisecond, Volume: 0.2, Cooldown: 50 * time.Millisecond},
}
