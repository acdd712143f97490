// Package input maps tcell key events to game actions
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/frog/game"
)

// Action is what a key press asks the game loop to do
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionRestart
	ActionMute
	ActionTurn
)

// Command is a resolved key press
type Command struct {
	Action    Action
	Direction game.Direction // Set for ActionTurn
}

var specialKeys = map[tcell.Key]Command{
	tcell.KeyUp:     {Action: ActionTurn, Direction: game.DirUp},
	tcell.KeyDown:   {Action: ActionTurn, Direction: game.DirDown},
	tcell.KeyLeft:   {Action: ActionTurn, Direction: game.DirLeft},
	tcell.KeyRight:  {Action: ActionTurn, Direction: game.DirRight},
	tcell.KeyEscape: {Action: ActionQuit},
	tcell.KeyCtrlC:  {Action: ActionQuit},
}

var runeKeys = map[rune]Command{
	'k': {Action: ActionTurn, Direction: game.DirUp},
	'j': {Action: ActionTurn, Direction: game.DirDown},
	'h': {Action: ActionTurn, Direction: game.DirLeft},
	'l': {Action: ActionTurn, Direction: game.DirRight},
	'w': {Action: ActionTurn, Direction: game.DirUp},
	's': {Action: ActionTurn, Direction: game.DirDown},
	'a': {Action: ActionTurn, Direction: game.DirLeft},
	'd': {Action: ActionTurn, Direction: game.DirRight},
	'p': {Action: ActionPause},
	' ': {Action: ActionPause},
	'r': {Action: ActionRestart},
	'm': {Action: ActionMute},
	'q': {Action: ActionQuit},
}

// Map resolves a key press; unknown keys map to ActionNone
func Map(key tcell.Key, ch rune) Command {
	if key == tcell.KeyRune {
		if cmd, ok := runeKeys[ch]; ok {
			return cmd
		}
		return Command{}
	}
	if cmd, ok := specialKeys[key]; ok {
		return cmd
	}
	return Command{}
}

// Apply performs the session-side effect of cmd and reports whether the
// loop should keep running; ActionMute is left to the caller
func Apply(s *game.Session, cmd Command) (bool, error) {
	switch cmd.Action {
	case ActionQuit:
		return false, nil
	case ActionPause:
		s.TogglePause()
	case ActionRestart:
		if err := s.Restart(); err != nil {
			return false, err
		}
	case ActionTurn:
		s.Turn(cmd.Direction)
	}
	return true, nil
}
