package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/swapi"
)

// Sentinel errors for the two user-visible failure kinds.
var (
	ErrFilmsLoad      = errors.New("couldn't load movies")
	ErrCharactersLoad = errors.New("couldn't load characters")
)

// UserMessage returns the message shown for err, or "" when err is nil.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFilmsLoad):
		return "Couldn't load movies :("
	case errors.Is(err, ErrCharactersLoad):
		return "Couldn't load characters :("
	default:
		return err.Error()
	}
}

// Session is the selection state machine. The zero value is an idle
// session with no films.
type Session struct {
	Films        []swapi.Film
	FilmsLoading bool
	FilmsLoaded  bool

	// Selected indexes Films once Generation is non-zero.
	Selected          int
	Generation        uint64
	Rows              []crawl.Row
	Total             float64
	CharactersLoading bool

	LastError   error
	LastUpdated time.Time
}

// HasSelection reports whether a film is selected.
func (s Session) HasSelection() bool {
	return s.Generation > 0 && s.Selected >= 0 && s.Selected < len(s.Films)
}

// SelectedFilm returns the selected film.
func (s Session) SelectedFilm() (swapi.Film, bool) {
	if !s.HasSelection() {
		return swapi.Film{}, false
	}
	return s.Films[s.Selected], true
}

// Store coordinates updates to the session. All transitions go through its
// methods; readers take copies with Snapshot.
type Store struct {
	mu      sync.RWMutex
	session Session
}

// BeginFilms marks the catalog as loading.
func (s *Store) BeginFilms() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.FilmsLoading = true
	s.session.LastUpdated = time.Now()
}

// FilmsLoaded publishes the sorted catalog.
func (s *Store) FilmsLoaded(films []swapi.Film) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Films = cloneFilms(films)
	s.session.FilmsLoading = false
	s.session.FilmsLoaded = true
	s.session.LastUpdated = time.Now()
}

// FilmsFailed records a catalog failure. The selector stays empty.
func (s *Store) FilmsFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.FilmsLoading = false
	s.session.LastError = fmt.Errorf("%w: %w", ErrFilmsLoad, err)
	s.session.LastUpdated = time.Now()
}

// Select resets the aggregation for film index i and returns the new
// generation plus the film's character references. ok is false when i is
// out of range or the catalog is not loaded.
func (s *Store) Select(i int) (gen uint64, refs []string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.FilmsLoaded || i < 0 || i >= len(s.session.Films) {
		return 0, nil, false
	}
	s.session.Generation++
	s.session.Selected = i
	s.session.Rows = nil
	s.session.Total = 0
	s.session.LastError = nil
	refs = append([]string(nil), s.session.Films[i].Characters...)
	s.session.CharactersLoading = len(refs) > 0
	s.session.LastUpdated = time.Now()
	return s.session.Generation, refs, true
}

// AppendCharacter adds a row published by generation gen. Rows from an
// older generation are dropped and false is returned.
func (s *Store) AppendCharacter(gen uint64, row crawl.Row) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.session.Generation || !s.session.CharactersLoading {
		return false
	}
	cm, _ := row.Character.HeightCM()
	s.session.Rows = append(s.session.Rows, row)
	s.session.Total += cm
	s.session.LastUpdated = time.Now()
	return true
}

// CharactersDone settles generation gen. A nil or cancellation error clears
// the loading flag; any other error is recorded as a character failure.
func (s *Store) CharactersDone(gen uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.session.Generation {
		return false
	}
	s.session.CharactersLoading = false
	if err != nil && !errors.Is(err, context.Canceled) {
		s.session.LastError = fmt.Errorf("%w: %w", ErrCharactersLoad, err)
	}
	s.session.LastUpdated = time.Now()
	return true
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.session
	snap.Films = cloneFilms(s.session.Films)
	snap.Rows = cloneRows(s.session.Rows)
	return snap
}

func cloneFilms(films []swapi.Film) []swapi.Film {
	if len(films) == 0 {
		return nil
	}
	dup := make([]swapi.Film, len(films))
	copy(dup, films)
	return dup
}

func cloneRows(rows []crawl.Row) []crawl.Row {
	if len(rows) == 0 {
		return nil
	}
	dup := make([]crawl.Row, len(rows))
	copy(dup, rows)
	return dup
}
