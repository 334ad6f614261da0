// Package config provides YAML-based game tuning for the classic games
// suite, with embedded defaults so the binary works without any files.
package config

// SnakeConfig contains all tuning for the snake game.
type SnakeConfig struct {
	GridSize       int `yaml:"grid_size"`        // Board is GridSize×GridSize, toroidal
	MoveEveryTicks int `yaml:"move_every_ticks"` // Platform ticks between snake moves
	PointsPerFood  int `yaml:"points_per_food"`
}

// ChaseConfig contains all tuning for the maze chase game.
type ChaseConfig struct {
	MoveEveryTicks  int `yaml:"move_every_ticks"` // Shorter than snake's: chase runs faster
	PointsPerPickup int `yaml:"points_per_pickup"`
}

// WordGuessConfig contains all tuning for the word guessing game.
type WordGuessConfig struct {
	MaxTries int `yaml:"max_tries"` // Wrong guesses allowed per word
}

// BoardConfig contains all tuning for the tic-tac-toe game.
type BoardConfig struct {
	// MediumRandomChance is the probability that the medium AI plays a
	// random move instead of the minimax move.
	MediumRandomChance float64 `yaml:"medium_random_chance"`
}
