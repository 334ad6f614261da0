package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// loadYAML resolves a config by searching, in order:
// customPath -> ~/.classic-games/configs/<name> -> ./configs/<name> -> embedded.
// A bad custom path is an error; every other failure falls through.
func loadYAML(customPath, name string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userCfgPath := userConfigPath(name); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".classic-games", "configs", filename)
}

// LoadSnake loads snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := loadYAML(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadChase loads maze chase configuration.
func LoadChase(customPath string) (ChaseConfig, error) {
	var cfg ChaseConfig
	if err := loadYAML(customPath, "chase.yaml", defaultChaseYAML, &cfg); err != nil {
		return DefaultChaseConfig(), err
	}
	return cfg, nil
}

// LoadWordGuess loads word guess configuration.
func LoadWordGuess(customPath string) (WordGuessConfig, error) {
	var cfg WordGuessConfig
	if err := loadYAML(customPath, "wordguess.yaml", defaultWordGuessYAML, &cfg); err != nil {
		return DefaultWordGuessConfig(), err
	}
	return cfg, nil
}

// LoadBoard loads tic-tac-toe configuration.
func LoadBoard(customPath string) (BoardConfig, error) {
	var cfg BoardConfig
	if err := loadYAML(customPath, "board.yaml", defaultBoardYAML, &cfg); err != nil {
		return DefaultBoardConfig(), err
	}
	return cfg, nil
}
