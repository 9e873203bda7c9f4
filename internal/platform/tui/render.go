package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/core"
)

// playfieldBg is the blue playfield background shared by every color.
const playfieldBg = lipgloss.Color("17")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(playfieldBg),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Background(playfieldBg),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(playfieldBg),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(playfieldBg),
	core.ColorMagenta:    lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Background(playfieldBg),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Background(playfieldBg),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(playfieldBg).Bold(true),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(playfieldBg),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(playfieldBg),
	core.ColorBackground: lipgloss.NewStyle().Foreground(lipgloss.Color("19")).Background(playfieldBg),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
