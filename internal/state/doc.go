// Package state holds the selection state machine shared by the TUI and the
// headless commands.
//
// # Overview
//
// Session is an explicit value describing everything the presentation layer
// renders: the catalog, the selected film, the rows loaded so far, the
// running height total, both loading flags and the last error. Store owns a
// Session and only changes it through named transitions:
//
//	BeginFilms()                 films loading
//	FilmsLoaded(films)           catalog published, loading cleared
//	FilmsFailed(err)             ErrFilmsLoad recorded, selector stays empty
//	Select(i)                    reset rows/total/error, loading set, new generation
//	AppendCharacter(gen, row)    row appended, total += height
//	CharactersDone(gen, err)     loading cleared, ErrCharactersLoad on failure
//
// # Generations
//
// Every Select bumps Generation. Character transitions carry the generation
// they were started for and are ignored once a newer selection exists, so a
// slow response for an abandoned film can never land in the current table.
// AppendCharacter is also refused once the current run has settled.
//
// # Invariants
//
//   - Total always equals the sum of HeightCM over Rows ("unknown" is zero)
//   - Rows is append-only until the next Select
//   - a failed run keeps the rows it already appended
//
// # Concurrency
//
// Store guards the session with a sync.RWMutex. Snapshot returns a copy with
// cloned slices so readers never observe a torn update.
package state
