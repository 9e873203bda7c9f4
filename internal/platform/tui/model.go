package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/audio"
	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/effects"
	"github.com/vovakirdan/brickbreak/internal/leaderboard"
)

// Layout constants for the play screen.
const (
	footerRows = 2 // Toast line and help line below the playfield
	minWidth   = 40
	minHeight  = 12
)

// Env holds the collaborators shared by every round a screen plays.
type Env struct {
	Config      config.BreakoutConfig
	Runtime     core.RuntimeConfig
	Board       *leaderboard.Board // nil disables score recording
	Audio       *audio.Player      // nil disables sound
	Logger      *log.Logger
	DefaultName string // Pre-filled in the name prompt
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	if e.Runtime.TickRate <= 0 {
		e.Runtime.TickRate = 60
	}
	if e.Runtime.Seed == 0 {
		e.Runtime.Seed = time.Now().UnixNano()
	}
	return e
}

type phase int

const (
	phasePlaying phase = iota
	phasePrompt        // Round finished, asking for a name
	phaseOver          // Score recorded or skipped
)

// generations are unique across models so a stale tick never matches a
// newer round, even after going back to the menu and starting again.
var generations atomic.Int64

func nextGen() int {
	return int(generations.Add(1))
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

var toastStyles = map[effects.ToastKind]lipgloss.Style{
	effects.ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	effects.ToastSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
	effects.ToastError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
}

// GameModel is the Bubble Tea model for one difficulty's rounds.
type GameModel struct {
	env      Env
	diff     config.Difficulty
	round    *breakout.Round
	gen      int
	hold     keyHold
	toasts   *effects.Toasts
	confetti *effects.Confetti
	prompt   NamePrompt
	phase    phase
	rank     int
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	width    int
	height   int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model with a Ready round. Init starts it.
func NewGameModel(env Env, diff config.Difficulty) GameModel {
	env = env.withDefaults()

	h := help.New()
	h.Width = env.Runtime.ScreenW

	m := GameModel{
		env:    env,
		diff:   diff,
		toasts: effects.NewToasts(effects.DefaultToastTTL, nil),
		screen: core.NewScreen(env.Runtime.ScreenW, fieldRows(env.Runtime.ScreenH)),
		keys:   DefaultGameKeyMap(),
		help:   h,
		width:  env.Runtime.ScreenW,
		height: env.Runtime.ScreenH,
	}
	m.newRound()
	return m
}

func fieldRows(height int) int {
	return max(height-footerRows, 1)
}

// newRound replaces the round and its per-round effects.
func (m *GameModel) newRound() {
	m.gen = nextGen()
	field := m.env.Config.Playfield
	m.confetti = effects.NewConfetti(field.Width, field.Height,
		effects.DefaultConfettiConfig(m.env.Runtime.TickRate), m.env.Runtime.Seed+int64(m.gen))

	reactors := []breakout.Reactor{m.toasts, m.confetti}
	if m.env.Audio != nil {
		reactors = append(reactors, m.env.Audio)
	}
	m.round = breakout.NewRound(m.env.Config, m.diff, m.env.Logger, reactors...)
	m.hold = newKeyHold(m.env.Runtime.TickRate)
	m.phase = phasePlaying
	m.rank = 0
}

// Init starts the round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.round.Start()
	return tickCmd(m.env.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.phase == phasePlaying {
			m.round.Input().PointerMove(m.viewport().ToFieldX(msg.X))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case effectTickMsg:
		if msg.Gen != m.gen || !m.confetti.Active() {
			return m, nil
		}
		m.confetti.Update()
		return m, effectTickCmd(m.env.Runtime.TickRate, m.gen)

	case refreshMsg:
		return m, nil
	}

	if m.phase == phasePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phasePrompt {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyEsc:
			m.phase = phaseOver
			return m, nil
		}
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.hold.reset(m.round.Input())
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.phase == phaseOver {
			return m.restart()
		}

	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()
		return m, refreshAfter(effects.DefaultToastTTL)

	case key.Matches(msg, m.keys.Left):
		if m.phase == phasePlaying {
			m.hold.press(breakout.DirLeft, m.round.Input())
		}

	case key.Matches(msg, m.keys.Right):
		if m.phase == phasePlaying {
			m.hold.press(breakout.DirRight, m.round.Input())
		}

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || !m.round.Active() {
		return m, nil
	}

	m.hold.tick(m.round.Input())
	m.round.Advance()

	if m.round.Active() {
		return m, tickCmd(m.env.Runtime.TickRate, m.gen)
	}
	return m.finish()
}

// finish stops input and opens the name prompt.
func (m GameModel) finish() (tea.Model, tea.Cmd) {
	m.hold.reset(m.round.Input())
	snap := m.round.Snapshot()

	cmds := []tea.Cmd{refreshAfter(effects.DefaultToastTTL)}
	if m.confetti.Active() {
		cmds = append(cmds, effectTickCmd(m.env.Runtime.TickRate, m.gen))
	}

	if m.env.Board == nil {
		m.phase = phaseOver
		return m, tea.Batch(cmds...)
	}

	m.rank = m.env.Board.Rank(snap.Score)
	m.prompt = NewNamePrompt(snap.Round, snap.Score, m.rank, m.env.DefaultName)
	m.phase = phasePrompt
	cmds = append(cmds, m.prompt.Init())
	return m, tea.Batch(cmds...)
}

// submit records the score under the prompted name.
func (m GameModel) submit() (tea.Model, tea.Cmd) {
	name := m.prompt.Name()
	score := m.round.Snapshot().Score

	if _, err := m.env.Board.Record(name, score); err != nil {
		m.env.Logger.Warn("could not save score", "name", name, "score", score, "err", err)
		m.toasts.Push(effects.ToastError, "Score not saved")
	}
	m.toasts.AnnounceScore(name, score)
	m.phase = phaseOver

	return m, refreshAfter(effects.DefaultToastTTL)
}

// restart begins a fresh round at the same difficulty.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.newRound()
	m.round.Start()
	return m, tickCmd(m.env.Runtime.TickRate, m.gen)
}

func (m GameModel) toggleMute() {
	if m.env.Audio == nil {
		m.toasts.Push(effects.ToastInfo, "Sound unavailable")
		return
	}
	muted := !m.env.Audio.Muted()
	m.env.Audio.SetMuted(muted)
	if muted {
		m.toasts.Push(effects.ToastInfo, "Sound off")
	} else {
		m.toasts.Push(effects.ToastInfo, "Sound on")
	}
}

func (m GameModel) viewport() breakout.Viewport {
	return breakout.Viewport{
		Cells: core.NewRect(0, 0, m.screen.Width(), m.screen.Height()),
		Field: m.env.Config.Playfield,
	}
}

// draw renders the playfield and effects into the screen buffer.
func (m GameModel) draw() {
	view := m.viewport()
	m.screen.Clear()
	breakout.Render(m.screen, m.round.Snapshot(), view)
	m.confetti.Render(m.screen, view)

	if m.phase == phaseOver {
		m.drawResult()
	}
}

// drawResult draws the end-of-round box over the playfield.
func (m GameModel) drawResult() {
	snap := m.round.Snapshot()

	title, color := "GAME OVER", core.ColorRed
	if snap.Round == breakout.Won {
		title, color = "YOU WIN!", core.ColorGreen
	}

	w, h := 30, 7
	r := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.DrawRect(r, ' ', core.ColorWhite)
	m.screen.DrawBox(r, core.ColorWhite)
	m.screen.DrawTextCentered(r.Y+1, title, color)
	m.screen.DrawTextCentered(r.Y+3, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	if m.rank > 0 {
		m.screen.DrawTextCentered(r.Y+4, fmt.Sprintf("Rank #%d", m.rank), core.ColorYellow)
	}
	m.screen.DrawTextCentered(r.Y+5, "r: restart  esc: menu", core.ColorGray)
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".brickbreak", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("brickbreak_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.toasts.Push(effects.ToastInfo, "Screenshot saved")
}

func (m GameModel) toastLine() string {
	visible := m.toasts.Visible()
	if len(visible) == 0 {
		return ""
	}
	t := visible[len(visible)-1]
	return toastStyles[t.Kind].Render(centerText(t.Message, m.width))
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.draw()

	var field string
	if m.phase == phasePrompt {
		field = lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, m.prompt.View(),
			lipgloss.WithWhitespaceChars(string(breakout.BackgroundChar)),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("19")),
			lipgloss.WithWhitespaceBackground(playfieldBg),
		)
	} else {
		field = RenderScreen(m.screen)
	}

	return field + "\n" + m.toastLine() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame plays rounds at one difficulty until the user quits.
func RunGame(env Env, diff config.Difficulty) error {
	p := tea.NewProgram(
		NewGameModel(env, diff),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
