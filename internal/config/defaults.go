package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

//go:embed defaults/wordguess.yaml
var defaultWordGuessYAML []byte

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		GridSize:       20,
		MoveEveryTicks: 8,
		PointsPerFood:  1,
	}
}

// DefaultChaseConfig returns the default maze chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		MoveEveryTicks:  5,
		PointsPerPickup: 10,
	}
}

// DefaultWordGuessConfig returns the default word guess configuration.
func DefaultWordGuessConfig() WordGuessConfig {
	return WordGuessConfig{
		MaxTries: 6,
	}
}

// DefaultBoardConfig returns the default tic-tac-toe configuration.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		MediumRandomChance: 0.3,
	}
}
