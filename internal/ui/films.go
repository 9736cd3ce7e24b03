package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/swcrawl/internal/state"
)

const filmsLoadingMessage = "Hold on while we fetch the movies for you!"

func (m Model) filmsTitle() string {
	if n := len(m.session.Films); n > 0 {
		return fmt.Sprintf("Movies (%d)", n)
	}
	return "Movies"
}

// renderFilmList renders the film selector or its loading and error states.
func (m Model) renderFilmList(width, height int) string {
	bgColor := m.paneBackground(PaneFilms)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	wrap := lipgloss.NewStyle().Width(width).Background(lipgloss.Color(bgColor))

	switch {
	case m.session.FilmsLoading:
		return wrap.Render(m.spinnerView(bgColor) + bg.Space() + bg.Render(filmsLoadingMessage, styles.WarningText))
	case errors.Is(m.session.LastError, state.ErrFilmsLoad):
		return wrap.Render(bg.Render(state.UserMessage(m.session.LastError), styles.DangerText))
	case len(m.session.Films) == 0:
		return bg.Render("No movies found", styles.MutedText)
	}

	end := min(m.filmOffset+max(height, 1), len(m.session.Films))
	lines := make([]string, 0, end-m.filmOffset)
	for i := m.filmOffset; i < end; i++ {
		lines = append(lines, m.formatFilmRow(i, width, bgColor))
	}
	return strings.Join(lines, "\n")
}

// formatFilmRow renders "● Title          1977". The dot marks the film
// whose characters are shown; the cursor row uses the selection colors.
func (m Model) formatFilmRow(i, width int, bgColor string) string {
	film := m.session.Films[i]
	styles := m.theme.Styles()

	marker := "  "
	if m.session.HasSelection() && m.session.Selected == i {
		marker = "● "
	}
	year := film.Year()
	titleWidth := max(width-len(marker)-len(year)-1, 4)

	markerStyle, titleStyle, yearStyle := styles.AccentText, styles.Text, styles.MutedText
	if i == m.filmCursor && m.focus == PaneFilms {
		bgColor = m.theme.SelectionBg
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		markerStyle, titleStyle, yearStyle = sel, sel.Bold(true), sel
	} else if i == m.filmCursor {
		titleStyle = titleStyle.Bold(true)
	}
	bg := NewBgStyle(bgColor)

	line := bg.Render(marker, markerStyle) +
		bg.Render(fit(film.Title, titleWidth), titleStyle) +
		bg.Space() +
		bg.Render(year, yearStyle)
	return bg.FillLine(line, width)
}
