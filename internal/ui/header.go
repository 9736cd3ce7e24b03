package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/swcrawl/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render("swcrawl", styles.Logo)}

	// Films
	switch {
	case m.session.FilmsLoading:
		parts = append(parts, m.spinnerView(m.theme.Surface)+bg.Space()+
			bg.Render("Loading movies", styles.WarningText.Bold(true)))
	case m.session.FilmsLoaded:
		parts = append(parts, m.labelled("Movies:", fmt.Sprintf("%d", len(m.session.Films)), compact, styles.Text, styles, bg))
	}

	// Characters
	if film, ok := m.session.SelectedFilm(); ok {
		loaded := fmt.Sprintf("%d/%d", len(m.session.Rows), len(film.Characters))
		valueStyle := styles.Text
		if m.session.CharactersLoading {
			valueStyle = styles.InfoText
		}
		chars := m.labelled("Characters:", loaded, compact, valueStyle, styles, bg)
		if m.session.CharactersLoading {
			chars += bg.Space() + m.spinnerView(m.theme.Surface)
		} else if m.session.LastError == nil {
			chars += bg.Space() + bg.Render("✓", styles.SuccessText)
		}
		parts = append(parts, chars)
	}

	if m.filterInput.Value() != "" {
		parts = append(parts, m.labelled("Filter:", m.filterInput.Value(), compact, styles.AccentText, styles, bg))
	}

	// Error indicator
	if m.session.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Space()+
				bg.Render(truncate(state.UserMessage(m.session.LastError), maxErr), styles.DangerText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// labelled renders "Label: value", dropping the label in compact mode.
func (m Model) labelled(label, value string, compact bool, valueStyle lipgloss.Style, styles Styles, bg BgStyle) string {
	if compact {
		return bg.Render(value, valueStyle)
	}
	return bg.Render(label, styles.MutedText) + bg.Space() + bg.Render(value, valueStyle)
}

// renderCommandBar renders the key hints for the focused pane.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.filterActive:
		commands = []cmd{
			{"enter", "Apply"},
			{"esc", "Clear"},
		}
	case m.focus == PaneCharacters:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"s", m.sortMode.Label()},
			{"r", "Reverse"},
			{"/", "Filter"},
			{"Tab", "Movies"},
			{"L", "Logs"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Load"},
			{"s", m.sortMode.Label()},
			{"/", "Filter"},
			{"Tab", "Characters"},
			{"L", "Logs"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
