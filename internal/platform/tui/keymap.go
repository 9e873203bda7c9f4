package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/breakout"
)

// GameKeyMap defines the key bindings for the play screen.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Mute, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Mute, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
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
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// keyHold emulates key release for terminals, which only report presses.
// A press holds its direction for a number of ticks; auto-repeat presses
// extend the hold. Pressing the opposite direction releases the other.
type keyHold struct {
	first  int // Ticks held after an initial press
	repeat int // Ticks held after an auto-repeat press
	left   int
	right  int
}

func newKeyHold(tickRate int) keyHold {
	if tickRate <= 0 {
		tickRate = 60
	}
	return keyHold{first: max(tickRate/4, 1), repeat: max(tickRate/8, 1)}
}

func (h *keyHold) press(dir breakout.Direction, c *breakout.Controller) {
	held, other := &h.left, &h.right
	otherDir := breakout.DirRight
	if dir == breakout.DirRight {
		held, other = &h.right, &h.left
		otherDir = breakout.DirLeft
	}

	if *held > 0 {
		*held = max(*held, h.repeat)
	} else {
		*held = h.first
	}
	*other = 0

	c.KeyUp(otherDir)
	c.KeyDown(dir)
}

// tick counts holds down and releases expired directions.
func (h *keyHold) tick(c *breakout.Controller) {
	if h.left > 0 {
		h.left--
		if h.left == 0 {
			c.KeyUp(breakout.DirLeft)
		}
	}
	if h.right > 0 {
		h.right--
		if h.right == 0 {
			c.KeyUp(breakout.DirRight)
		}
	}
}

func (h *keyHold) reset(c *breakout.Controller) {
	h.left, h.right = 0, 0
	c.Release()
}
