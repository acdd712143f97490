package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/config"
	"github.com/lixenwraith/frog/game"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		ch       rune
		expected Command
	}{
		{"Arrow up", tcell.KeyUp, 0, Command{Action: ActionTurn, Direction: game.DirUp}},
		{"Arrow left", tcell.KeyLeft, 0, Command{Action: ActionTurn, Direction: game.DirLeft}},
		{"Vi right", tcell.KeyRune, 'l', Command{Action: ActionTurn, Direction: game.DirRight}},
		{"WASD down", tcell.KeyRune, 's', Command{Action: ActionTurn, Direction: game.DirDown}},
		{"Pause", tcell.KeyRune, 'p', Command{Action: ActionPause}},
		{"Space pause", tcell.KeyRune, ' ', Command{Action: ActionPause}},
		{"Restart", tcell.KeyRune, 'r', Command{Action: ActionRestart}},
		{"Mute", tcell.KeyRune, 'm', Command{Action: ActionMute}},
		{"Quit rune", tcell.KeyRune, 'q', Command{Action: ActionQuit}},
		{"Escape", tcell.KeyEscape, 0, Command{Action: ActionQuit}},
		{"Ctrl-C", tcell.KeyCtrlC, 0, Command{Action: ActionQuit}},
		{"Unknown rune", tcell.KeyRune, 'z', Command{}},
		{"Unknown key", tcell.KeyF5, 0, Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Map(tt.key, tt.ch); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	s, err := game.NewSession(config.Default())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if running, _ := Apply(s, Command{Action: ActionPause}); !running || !s.Paused() {
		t.Errorf("Expected pause to keep running and pause the session")
	}
	if running, _ := Apply(s, Command{Action: ActionRestart}); !running || s.Paused() {
		t.Errorf("Expected restart to keep running with a fresh session")
	}
	if running, _ := Apply(s, Command{Action: ActionTurn, Direction: game.DirLeft}); !running {
		t.Error("Expected turn to keep running")
	}
	if v := s.Frog().Head().Velocity(); v.X >= 0 {
		t.Errorf("Expected head to face left, got %v", v)
	}
	if running, _ := Apply(s, Command{Action: ActionQuit}); running {
		t.Error("Expected quit to stop the loop")
	}
}
