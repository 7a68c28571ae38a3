// internal/interfaces/game_context.go
package interfaces

// GameContext is what the run-phase system needs from the run context.
type GameContext interface {
	ActivateRun()
	EndRun()
}

// RunStateListener is told about depth progress and about the end of the run.
type RunStateListener interface {
	OnDepthAdvanced(wasPenalized bool)
	OnTimeExpired()
}
