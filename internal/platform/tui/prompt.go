package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/leaderboard"
)

const nameCharLimit = 24

var promptBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("57")).
	Padding(1, 3)

var (
	promptWinStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	promptLoseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	promptHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NamePrompt asks for the name to record with a finished round's score.
type NamePrompt struct {
	input  textinput.Model
	result breakout.RoundState
	score  int
	rank   int
}

// NewNamePrompt creates a focused prompt. initial pre-fills the field.
func NewNamePrompt(result breakout.RoundState, score, rank int, initial string) NamePrompt {
	ti := textinput.New()
	ti.Placeholder = leaderboard.DefaultName
	ti.CharLimit = nameCharLimit
	ti.Width = nameCharLimit
	ti.Prompt = "Name: "
	ti.SetValue(initial)
	ti.Focus()

	return NamePrompt{input: ti, result: result, score: score, rank: rank}
}

// Init starts the cursor blink.
func (p NamePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards messages to the text field.
func (p NamePrompt) Update(msg tea.Msg) (NamePrompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Name returns the normalized name to record.
func (p NamePrompt) Name() string {
	return leaderboard.NormalizeName(p.input.Value())
}

// View renders the prompt box.
func (p NamePrompt) View() string {
	var b strings.Builder

	if p.result == breakout.Won {
		b.WriteString(promptWinStyle.Render("YOU WIN!"))
	} else {
		b.WriteString(promptLoseStyle.Render("GAME OVER"))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %d    Rank: #%d\n\n", p.score, p.rank)
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(promptHintStyle.Render("enter: save  esc: skip"))

	return promptBoxStyle.Render(b.String())
}
