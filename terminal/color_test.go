package terminal

import (
	"testing"

	"github.com/lixenwraith/frog/core"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name     string
		color    core.RGB
		expected uint8
	}{
		{"Black", core.RGBBlack, 16},
		{"White", core.RGBWhite, 231},
		{"Pure red", core.RGB{R: 255}, 196},
		{"Frog green", core.RGB{G: 200}, 40},
		{"Mid gray", core.RGB{R: 128, G: 128, B: 128}, 244},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.color); got != tt.expected {
				t.Errorf("Expected index %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 to parse as ColorMode256")
	}
	if ParseColorMode("24bit") != ColorModeTrueColor {
		t.Error("Expected 24bit to parse as ColorModeTrueColor")
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, name := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(name, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("Expected truecolor from COLORTERM, got %s", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("Expected 256 from plain TERM, got %s", got)
	}
}
