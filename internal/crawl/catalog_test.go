package crawl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/swcrawl/internal/swapi"
)

type fakeFilms struct {
	films []swapi.Film
	err   error
}

func (f fakeFilms) FetchFilms(context.Context) ([]swapi.Film, error) {
	return f.films, f.err
}

func TestSortFilms_OrdersByReleaseDate(t *testing.T) {
	films := []swapi.Film{
		{Title: "Revenge of the Sith", ReleaseDate: "2005-05-19"},
		{Title: "A New Hope", ReleaseDate: "1977-05-25"},
		{Title: "Undated", ReleaseDate: "tbd"},
		{Title: "The Phantom Menace", ReleaseDate: "1999-05-19"},
		{Title: "The Empire Strikes Back", ReleaseDate: "1980-05-17"},
	}

	got := SortFilms(films)
	want := []string{"A New Hope", "The Empire Strikes Back", "The Phantom Menace", "Revenge of the Sith", "Undated"}
	if len(got) != len(want) {
		t.Fatalf("SortFilms returned %d films, want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("SortFilms[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
	for i := 1; i < len(got)-1; i++ {
		if got[i].ParsedReleaseDate().Before(got[i-1].ParsedReleaseDate()) {
			t.Fatalf("SortFilms not non-decreasing at %d", i)
		}
	}
	if films[0].Title != "Revenge of the Sith" {
		t.Fatalf("SortFilms mutated its input")
	}
}

func TestSortFilms_Empty(t *testing.T) {
	if got := SortFilms(nil); got != nil {
		t.Fatalf("SortFilms(nil) = %#v, want nil", got)
	}
}

func TestLoadCatalog(t *testing.T) {
	src := fakeFilms{films: []swapi.Film{
		{Title: "B", ReleaseDate: "1983-05-25"},
		{Title: "A", ReleaseDate: "1977-05-25"},
	}}
	films, err := LoadCatalog(context.Background(), src)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if films[0].Title != "A" || films[1].Title != "B" {
		t.Fatalf("LoadCatalog = %#v, want sorted", films)
	}
}

func TestLoadCatalog_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadCatalog(context.Background(), fakeFilms{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("LoadCatalog error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "fetch films") {
		t.Fatalf("LoadCatalog error = %q, want it to mention fetch films", err.Error())
	}
}
