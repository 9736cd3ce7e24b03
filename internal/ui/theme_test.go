package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames = %v, want 3 themes", names)
	}
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("Dracula"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("Kanagawa").Name; got != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa) = %q", got)
	}
	if got := GetTheme("missing").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(missing) = %q, want Nightfox", got)
	}
}

func TestGenderStyle(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()

	if got := styles.GenderStyle(" Female ").GetForeground(); got != lipgloss.Color(th.GenderColors["female"]) {
		t.Fatalf("GenderStyle(female) = %v, want %v", got, th.GenderColors["female"])
	}
	if got := styles.GenderStyle("droid").GetForeground(); got != lipgloss.Color(th.Text) {
		t.Fatalf("GenderStyle(droid) = %v, want text color %v", got, th.Text)
	}

	bg := styles.WithBackground(th.Surface)
	if got := bg.GenderStyle("male").GetForeground(); got != lipgloss.Color(th.GenderColors["male"]) {
		t.Fatalf("WithBackground dropped gender colors: %v", got)
	}
}

func TestEveryThemeColorsKnownGenders(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, g := range []string{"male", "female", "n/a", "unknown"} {
			if th.GenderColors[g] == "" {
				t.Fatalf("theme %s has no color for %q", name, g)
			}
		}
	}
}
