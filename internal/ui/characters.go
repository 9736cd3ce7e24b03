package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/state"
)

const columnGap = "  "

func (m Model) charactersTitle() string {
	film, ok := m.session.SelectedFilm()
	if !ok {
		return "Characters"
	}
	title := film.Title
	if year := film.Year(); year != "" {
		title = fmt.Sprintf("%s (%s)", title, year)
	}
	return title + " · " + m.sortMode.Label() + " " + m.sortArrow()
}

func (m Model) sortArrow() string {
	if m.sortDesc {
		return "▼"
	}
	return "▲"
}

// visibleRows returns the loaded rows after filtering and sorting.
func (m Model) visibleRows() []crawl.Row {
	return visibleRows(m.session.Rows, m.sortMode, m.sortDesc, m.filterInput.Value())
}

// refreshTable re-renders the row area of the character table.
func (m *Model) refreshTable() {
	if !m.ready {
		return
	}
	bgColor := m.paneBackground(PaneCharacters)
	m.tableViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	width := m.tableViewport.Width
	rows := m.visibleRows()
	if len(rows) == 0 {
		msg := "No characters"
		if len(m.session.Rows) > 0 {
			msg = "No characters match the filter"
		}
		bg := NewBgStyle(bgColor)
		m.tableViewport.SetContent(bg.FillLine(bg.Render(msg, m.theme.Styles().MutedText), width))
		return
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, m.formatCharacterRow(row, width, bgColor))
	}
	m.tableViewport.SetContent(strings.Join(lines, "\n"))
}

func (m Model) formatCharacterRow(row crawl.Row, width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)
	nameW, genderW, heightW := columnWidths(width)

	c := row.Character
	line := bg.Render(fit(c.Name, nameW), styles.Text) +
		bg.Sep(columnGap) +
		bg.Render(fit(displayGender(c.Gender), genderW), styles.GenderStyle(c.Gender)) +
		bg.Sep(columnGap) +
		bg.Render(padLeft(truncate(displayHeight(c), heightW), heightW), styles.MutedText)
	return bg.FillLine(line, width)
}

// renderCharacters renders the right pane: the logo before any selection,
// a spinner while the first character is pending, otherwise the table.
func (m Model) renderCharacters(width, height int) string {
	bgColor := m.paneBackground(PaneCharacters)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	if !m.session.HasSelection() {
		return m.renderLogo(width, height, bgColor)
	}

	if m.session.CharactersLoading && len(m.session.Rows) == 0 {
		film, _ := m.session.SelectedFilm()
		msg := m.spinnerView(bgColor) + bg.Space() +
			bg.Render(fmt.Sprintf("Fetching %d characters...", len(film.Characters)), styles.WarningText)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg,
			lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
	}

	return m.renderTable(width, bgColor)
}

func (m Model) renderTable(width int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)
	nameW, genderW, heightW := columnWidths(width)

	var lines []string
	if m.filterShown() {
		input := m.filterInput
		input.TextStyle = styles.Text.Background(lipgloss.Color(bgColor))
		input.PromptStyle = styles.AccentText.Background(lipgloss.Color(bgColor))
		input.PlaceholderStyle = styles.FaintText.Background(lipgloss.Color(bgColor))
		lines = append(lines, bg.FillLine(input.View(), width))
	}

	headerStyle := styles.AccentText.Bold(true)
	lines = append(lines, bg.FillLine(
		bg.Render(fit(m.columnLabel("Name", SortName), nameW), headerStyle)+
			bg.Sep(columnGap)+
			bg.Render(fit(m.columnLabel("Gender", SortGender), genderW), headerStyle)+
			bg.Sep(columnGap)+
			bg.Render(padLeft(m.columnLabel("Height", SortHeight), heightW), headerStyle),
		width))

	rule := bg.Render(strings.Repeat("─", width), styles.FaintText)
	lines = append(lines, rule, m.tableViewport.View(), rule)

	// Footers cover every loaded row, not only the filtered ones.
	total := footerTotal(len(m.session.Rows))
	sum := footerSum(m.session.Total)
	sumWidth := max(width-nameW-len(columnGap), 0)
	footerStyle := styles.Text.Bold(true)
	lines = append(lines, bg.FillLine(
		bg.Render(fit(total, nameW), footerStyle)+
			bg.Sep(columnGap)+
			bg.Render(padLeft(truncate(sum, sumWidth), sumWidth), footerStyle),
		width))

	if errors.Is(m.session.LastError, state.ErrCharactersLoad) {
		lines = append(lines, bg.FillLine(bg.Render(state.UserMessage(m.session.LastError), styles.DangerText), width))
	}
	return strings.Join(lines, "\n")
}

// columnLabel appends the sort arrow to the column the table is sorted by.
func (m Model) columnLabel(label string, mode SortMode) string {
	if m.sortMode != mode {
		return label
	}
	return label + " " + m.sortArrow()
}
