package crawl

import (
	"context"
	"fmt"
	"sort"

	"github.com/five82/swcrawl/internal/swapi"
)

// FilmSource fetches the film listing.
type FilmSource interface {
	FetchFilms(ctx context.Context) ([]swapi.Film, error)
}

// LoadCatalog fetches the film list once and returns it sorted by release date.
func LoadCatalog(ctx context.Context, src FilmSource) ([]swapi.Film, error) {
	films, err := src.FetchFilms(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch films: %w", err)
	}
	return SortFilms(films), nil
}

// SortFilms returns a copy of films ordered ascending by release date.
// Films with an unparseable date keep their relative order after dated ones.
func SortFilms(films []swapi.Film) []swapi.Film {
	if len(films) == 0 {
		return nil
	}
	out := make([]swapi.Film, len(films))
	copy(out, films)
	sort.SliceStable(out, func(i, j int) bool {
		ti := out[i].ParsedReleaseDate()
		tj := out[j].ParsedReleaseDate()
		if ti.IsZero() || tj.IsZero() {
			return !ti.IsZero() && tj.IsZero()
		}
		return ti.Before(tj)
	})
	return out
}
