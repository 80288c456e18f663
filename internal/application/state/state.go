package state

// GameState is the host's run state around the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the engine steps in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// Finished reports whether the run has ended and waits for a restart
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateStageClear
}
