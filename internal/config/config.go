// Package config loads application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrBadBoardSize is returned for non-positive board dimensions.
var ErrBadBoardSize = errors.New("board dimensions must be positive")

// Config holds everything the binary needs at startup. Board dimensions
// below 4 are legal but make winning impossible on that axis.
type Config struct {
	BoardWidth  int    `yaml:"board-width" env:"DROPFOUR_BOARD_WIDTH" env-default:"7"`
	BoardHeight int    `yaml:"board-height" env:"DROPFOUR_BOARD_HEIGHT" env-default:"6"`
	LogLevel    string `yaml:"log-level" env:"DROPFOUR_LOG_LEVEL" env-default:"info"`
	LogFile     string `yaml:"log-file" env:"DROPFOUR_LOG_FILE" env-default:""`
	Telemetry   bool   `yaml:"telemetry" env:"DROPFOUR_TELEMETRY" env-default:"false"`

	Player1Color string `yaml:"player1-color" env:"DROPFOUR_PLAYER1_COLOR" env-default:"#E03C31"`
	Player2Color string `yaml:"player2-color" env:"DROPFOUR_PLAYER2_COLOR" env-default:"#FFD23F"`
}

// Load reads configuration from path if the file exists, then applies
// environment overrides. A missing file is not an error; env vars and
// defaults cover everything.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if conf.BoardWidth <= 0 || conf.BoardHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadBoardSize, conf.BoardWidth, conf.BoardHeight)
	}

	return conf, nil
}
