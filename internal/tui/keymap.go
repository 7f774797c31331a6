package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/johannesE/2048/internal/game"
)

// Action is a semantic game action derived from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionHint
	ActionRestart
	ActionScores
	ActionBack
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to an action. For ActionMove the
// direction return value is meaningful.
func (km *KeyMapper) Map(msg tea.KeyMsg) (Action, game.Direction) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, 0
	case "left", "a", "h":
		return ActionMove, game.Left
	case "right", "d", "l":
		return ActionMove, game.Right
	case "up", "w", "k":
		return ActionMove, game.Up
	case "down", "s", "j":
		return ActionMove, game.Down
	case "?":
		return ActionHint, 0
	case "r":
		return ActionRestart, 0
	case "t":
		return ActionScores, 0
	case "b", "esc":
		return ActionBack, 0
	}
	return ActionNone, 0
}
