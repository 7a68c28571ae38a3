package interfaces

// Game is what the UI widgets and states may ask of the running game.
type Game interface {
	RequestDive()
	Pause()
	Unpause()
	IsPaused() bool
}
