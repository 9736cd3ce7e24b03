package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// handleLogLines replaces the log pane content with a fresh tail.
func (m *Model) handleLogLines(msg logLinesMsg) {
	if msg.err != nil {
		m.logLines = []string{"log unavailable: " + msg.err.Error()}
	} else {
		m.logLines = msg.lines
	}

	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	width := m.logViewport.Width
	rendered := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		rendered = append(rendered, m.levelStyle(line, styles).Render(ansi.Truncate(line, width, "…")))
	}
	if len(rendered) == 0 {
		rendered = append(rendered, styles.FaintText.Render("No log output yet"))
	}

	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.SurfaceAlt))
	m.logViewport.SetContent(strings.Join(rendered, "\n"))
	m.logViewport.GotoBottom()
}

// levelStyle picks a style from the level token of a text-formatted line.
func (m Model) levelStyle(line string, styles Styles) lipgloss.Style {
	switch {
	case strings.Contains(line, " ERRO ") || strings.Contains(line, " FATA "):
		return styles.DangerText
	case strings.Contains(line, " WARN "):
		return styles.WarningText
	case strings.Contains(line, " DEBU "):
		return styles.FaintText
	default:
		return styles.Text
	}
}

func (m Model) renderLogPane() string {
	title := "Log"
	if m.logPath != "" {
		title += " · " + m.logPath
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, LogPaneHeight, false)
}
