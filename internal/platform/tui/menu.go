package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/leaderboard"
)

// Menu rows, top to bottom.
const (
	menuPlay = iota
	menuDifficulty
	menuScores
	menuQuit
	menuRows
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor         int
	difficulties   []config.DifficultyName
	diffCursor     int
	best           int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       bool // Set when user picks Play
	openScoreboard bool // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model. board may be nil.
func NewMenuModel(board *leaderboard.Board, cfg core.RuntimeConfig, initial config.DifficultyName) MenuModel {
	names := config.DifficultyNames()
	diffCursor := 0
	for i, n := range names {
		if n == initial {
			diffCursor = i
		}
	}

	best := 0
	if board != nil {
		best = board.Best()
	}

	return MenuModel{
		difficulties: names,
		diffCursor:   diffCursor,
		best:         best,
		width:        cfg.ScreenW,
		height:       cfg.ScreenH,
		config:       cfg,
		keyMapper:    NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < menuRows-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuDifficulty {
			m.diffCursor = (m.diffCursor + len(m.difficulties) - 1) % len(m.difficulties)
		}

	case MenuActionRight:
		if m.cursor == menuDifficulty {
			m.diffCursor = (m.diffCursor + 1) % len(m.difficulties)
		}

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay:
			m.selected = true
			return m, tea.Quit
		case menuDifficulty:
			m.diffCursor = (m.diffCursor + 1) % len(m.difficulties)
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K   B R E A K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
	b.WriteString("\n\n")

	labels := [menuRows]string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"High Scores",
		"Quit",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Difficulty returns the difficulty currently shown in the menu.
func (m MenuModel) Difficulty() config.DifficultyName {
	return m.difficulties[m.diffCursor]
}

// Selected returns true if user picked Play.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
