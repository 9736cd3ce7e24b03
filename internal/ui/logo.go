package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var logoLines = []string{
	`  ____  _____  _    ____   __        __ _    ____  ____  `,
	` / ___||_   _|/ \  |  _ \  \ \      / // \  |  _ \/ ___| `,
	` \___ \  | | / _ \ | |_) |  \ \ /\ / // _ \ | |_) \___ \ `,
	`  ___) | | |/ ___ \|  _ <    \ V  V // ___ \|  _ < ___) |`,
	` |____/  |_/_/   \_\_| \_\    \_/\_//_/   \_\_| \_\____/ `,
}

// renderLogo is the placeholder shown until a movie is selected. Narrow
// panes get a plain-text fallback.
func (m Model) renderLogo(width, height int, bgColor string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(bgColor)

	art := "STAR WARS"
	if width >= lipgloss.Width(logoLines[0]) {
		art = strings.Join(logoLines, "\n")
	}
	logo := styles.Logo.Background(lipgloss.Color(bgColor)).Render(art)
	hint := bg.Render("Select a movie from the list", styles.MutedText)

	content := lipgloss.JoinVertical(lipgloss.Center, logo, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
}
