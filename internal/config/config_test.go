package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// No config file and no env vars: defaults apply.
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if conf.BoardWidth != 7 || conf.BoardHeight != 6 {
		t.Errorf("board = %dx%d, want 7x6", conf.BoardWidth, conf.BoardHeight)
	}
	if conf.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", conf.LogLevel, "info")
	}
	if conf.Telemetry {
		t.Error("Telemetry = true by default, want false")
	}
	if conf.Player1Color != "#E03C31" || conf.Player2Color != "#FFD23F" {
		t.Errorf("colors = %q/%q, want defaults", conf.Player1Color, conf.Player2Color)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DROPFOUR_BOARD_WIDTH", "9")
	t.Setenv("DROPFOUR_BOARD_HEIGHT", "8")
	t.Setenv("DROPFOUR_LOG_LEVEL", "debug")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if conf.BoardWidth != 9 || conf.BoardHeight != 8 {
		t.Errorf("board = %dx%d, want 9x8", conf.BoardWidth, conf.BoardHeight)
	}
	if conf.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", conf.LogLevel, "debug")
	}
}

func TestLoadRejectsBadBoardSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
	}{
		{"zero width", "0", "6"},
		{"negative height", "7", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DROPFOUR_BOARD_WIDTH", tt.width)
			t.Setenv("DROPFOUR_BOARD_HEIGHT", tt.height)

			if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, ErrBadBoardSize) {
				t.Errorf("Load error = %v, want ErrBadBoardSize", err)
			}
		})
	}
}
