package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DonaM86/Classic-games/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message. Printable
// characters are always recorded as the frame's rune, because the word and
// board games consume typed text; movement shortcuts like WASD are set as
// actions on top of that, and each game decides which reading wins.
// Returns true if the key was a hard quit request (Ctrl+C).
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "up":
		frame.Set(core.ActionUp)
	case "down":
		frame.Set(core.ActionDown)
	case "left":
		frame.Set(core.ActionLeft)
	case "right":
		frame.Set(core.ActionRight)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "esc":
		frame.Set(core.ActionBack)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		frame.SetRune(r)
		switch r {
		case 'w':
			frame.Set(core.ActionUp)
		case 's':
			frame.Set(core.ActionDown)
		case 'a':
			frame.Set(core.ActionLeft)
		case 'd':
			frame.Set(core.ActionRight)
		case 'p':
			frame.Set(core.ActionPause)
		case 'r':
			frame.Set(core.ActionRestart)
		}
	}
	if msg.String() == " " {
		frame.Set(core.ActionConfirm)
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
