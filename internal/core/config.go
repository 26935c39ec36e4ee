package core

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, the frame clock and the RNG seed. A zero Seed means the platform picks
// one from the clock.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; equal seeds replay identically
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Idle     bool // Waiting on a title screen, no game running
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Cleared is the number of rows removed during this tick.
	Cleared int
}
