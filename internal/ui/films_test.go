package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/swcrawl/internal/state"
)

func TestRenderFilmList_LoadingFitsWidth(t *testing.T) {
	m := New(Options{Store: &state.Store{}})

	for _, width := range []int{24, 30, 44, 60} {
		out := m.renderFilmList(width, 10)
		for i, line := range strings.Split(out, "\n") {
			if w := lipgloss.Width(line); w > width {
				t.Fatalf("width %d: line %d is %d columns: %q", width, i, w, ansi.Strip(line))
			}
		}
		text := strings.Join(strings.Fields(ansi.Strip(out)), " ")
		if !strings.Contains(text, filmsLoadingMessage) {
			t.Fatalf("width %d: loading message clipped: %q", width, text)
		}
	}
}
