package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/frog/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestDefaultIsValid verifies defaults pass validation
func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	fc, err := cfg.FrogConfig()
	if err != nil {
		t.Fatalf("FrogConfig failed: %v", err)
	}
	if fc.GameOverColor != core.RGBWhite {
		t.Errorf("Expected white game over color, got %v", fc.GameOverColor)
	}
	if fc.CycleLength != cfg.Frog.CycleLength {
		t.Errorf("Expected cycle length %d, got %d", cfg.Frog.CycleLength, fc.CycleLength)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Expected missing default file to be ignored, got %v", err)
	}
	if cfg.Board.Columns != Default().Board.Columns {
		t.Errorf("Expected default columns, got %d", cfg.Board.Columns)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), "")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	path := writeFile(t, "frog.toml", `
[board]
cell_size = 10

[frog]
cycle_length = 3
color = [10, 20, 30]
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.CellSize != 10 {
		t.Errorf("Expected cell_size 10, got %d", cfg.Board.CellSize)
	}
	if cfg.Board.Rows != Default().Board.Rows {
		t.Errorf("Expected rows to keep default %d, got %d", Default().Board.Rows, cfg.Board.Rows)
	}
	fc, _ := cfg.FrogConfig()
	if fc.Color != (core.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("Expected color {10 20 30}, got %v", fc.Color)
	}
	if fc.CycleLength != 3 {
		t.Errorf("Expected cycle length 3, got %d", fc.CycleLength)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"Syntax error", "[board\n", false},
		{"Zero cycle length", "[frog]\ncycle_length = 0\n", true},
		{"Short color", "[frog]\ncolor = [1, 2]\n", true},
		{"Zero tick", "[session]\ntick_ms = 0\n", true},
		{"Negative growth", "[session]\ngrow_by = -1\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "frog.toml", tt.content)
			_, err := Load(path, "")
			if err == nil {
				t.Fatal("Expected error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestApplyEnvPrecedence(t *testing.T) {
	envFile := writeFile(t, ".env", "FROG_COLUMNS=80\nFROG_ROWS=40\n")
	t.Setenv(EnvRows, "25")

	cfg := Default()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Board.Columns != 80 {
		t.Errorf("Expected columns from env file 80, got %d", cfg.Board.Columns)
	}
	if cfg.Board.Rows != 25 {
		t.Errorf("Expected process env to win with 25, got %d", cfg.Board.Rows)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}

func TestApplyEnvRejectsNonInteger(t *testing.T) {
	t.Setenv(EnvTickMS, "fast")
	cfg := Default()
	if err := cfg.ApplyEnv(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Session.GrowEvery = 4

	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	path := writeFile(t, "frog.toml", string(data))

	loaded, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load of encoded config failed: %v\n%s", err, data)
	}
	if loaded.Session != cfg.Session || loaded.Board != cfg.Board {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}
