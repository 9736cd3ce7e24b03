package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/state"
	"github.com/five82/swcrawl/internal/swapi"
)

// Films loads the catalog sorted by release date.
func Films(ctx context.Context, opts Options) ([]swapi.Film, error) {
	e, err := setup(opts, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = e.closeLog() }()

	store := &state.Store{}
	if err := loadFilms(ctx, e, store); err != nil {
		return nil, err
	}
	return store.Snapshot().Films, nil
}

// CharacterReport is the outcome of a headless aggregation. On failure it
// still carries the rows loaded before the error.
type CharacterReport struct {
	Film  swapi.Film
	Rows  []crawl.Row
	Total float64
}

// Characters aggregates the characters of the film matching query, which
// is a 1-based position in the sorted catalog or a title.
func Characters(ctx context.Context, opts Options, query string) (CharacterReport, error) {
	e, err := setup(opts, false)
	if err != nil {
		return CharacterReport{}, err
	}
	defer func() { _ = e.closeLog() }()

	store := &state.Store{}
	if err := loadFilms(ctx, e, store); err != nil {
		return CharacterReport{}, err
	}

	idx, err := FindFilm(store.Snapshot().Films, query)
	if err != nil {
		return CharacterReport{}, err
	}
	gen, refs, ok := store.Select(idx)
	if !ok {
		return CharacterReport{}, fmt.Errorf("select film %d", idx+1)
	}

	runID := uuid.NewString()[:8]
	started := time.Now()
	snap := store.Snapshot()
	film, _ := snap.SelectedFilm()
	e.logger.Info("character aggregation started", "run", runID, "film", film.Title, "characters", len(refs))

	agg := crawl.NewAggregator(e.client, e.cfg.Concurrency, e.logger.With("component", "crawl"))
	runErr := agg.Run(ctx, refs, func(p crawl.Progress) {
		store.AppendCharacter(gen, p.Row)
		e.logger.Debug("character loaded", "run", runID, "name", p.Row.Character.Name, "loaded", p.Loaded, "total_cm", crawl.FormatCM(p.Total))
	})
	store.CharactersDone(gen, runErr)

	snap = store.Snapshot()
	report := CharacterReport{Film: film, Rows: snap.Rows, Total: snap.Total}
	if runErr != nil {
		if snap.LastError == nil {
			// Cancelled: not a character failure, but the run is incomplete.
			return report, runErr
		}
		e.logger.Error("character aggregation failed", "run", runID, "loaded", len(snap.Rows), "error", runErr)
		return report, snap.LastError
	}
	e.logger.Info("character aggregation finished",
		"run", runID,
		"loaded", len(snap.Rows),
		"total_cm", crawl.FormatCM(snap.Total),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return report, nil
}

func loadFilms(ctx context.Context, e *env, store *state.Store) error {
	store.BeginFilms()
	films, err := crawl.LoadCatalog(ctx, e.client)
	if err != nil {
		store.FilmsFailed(err)
		e.logger.Error("film catalog failed to load", "error", err)
		return store.Snapshot().LastError
	}
	store.FilmsLoaded(films)
	e.logger.Info("film catalog loaded", "count", len(films))
	return nil
}

// FindFilm resolves query against films: a 1-based position, or a title
// compared without regard to case.
func FindFilm(films []swapi.Film, query string) (int, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, fmt.Errorf("film is required")
	}
	if n, err := strconv.Atoi(q); err == nil {
		if n < 1 || n > len(films) {
			return 0, fmt.Errorf("film %d out of range (1-%d)", n, len(films))
		}
		return n - 1, nil
	}
	for i, f := range films {
		if strings.EqualFold(strings.TrimSpace(f.Title), q) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no film titled %q", q)
}
