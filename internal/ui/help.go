package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// helpSections lists the shortcuts shown in the help overlay.
func (m Model) helpSections() []helpSection {
	section := func(title string, bindings ...key.Binding) helpSection {
		items := make([]helpItem, 0, len(bindings))
		for _, b := range bindings {
			items = append(items, helpItem{key: b.Help().Key, desc: b.Help().Desc})
		}
		return helpSection{title: title, items: items}
	}
	k := m.keys
	return []helpSection{
		section("Navigation", k.Tab, k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp),
		section("Movies", k.Select),
		section("Characters", k.CycleSort, k.ReverseSort, k.Filter, k.Escape),
		section("General", k.ToggleLogs, k.CycleTheme, k.Help, k.Quit),
	}
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	sections := m.helpSections()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)
	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
