package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderMain composes header, panes, optional log pane and command bar.
func (m Model) renderMain() string {
	bodyHeight := m.contentHeight()

	filmWidth := filmPaneWidth(m.width)
	films := m.renderTitledBox(m.filmsTitle(), m.renderFilmList(filmWidth-2, bodyHeight-2),
		filmWidth, bodyHeight, m.focus == PaneFilms)

	charWidth := m.width - filmWidth
	characters := m.renderTitledBox(m.charactersTitle(), m.renderCharacters(charWidth-2, bodyHeight-2),
		charWidth, bodyHeight, m.focus == PaneCharacters)

	parts := []string{
		m.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, films, characters),
	}
	if m.showLogs {
		parts = append(parts, m.renderLogPane())
	}
	parts = append(parts, m.renderCommandBar())
	return strings.Join(parts, "\n")
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Focused boxes use the focus border and
// background. Content lines are clipped to the box.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}

// spinnerView renders the spinner on the given background.
func (m Model) spinnerView(bgColor string) string {
	sp := m.spinner
	sp.Style = lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Background(lipgloss.Color(bgColor))
	return sp.View()
}
