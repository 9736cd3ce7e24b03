package crawl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/five82/swcrawl/internal/swapi"
)

// CharacterSource fetches a single character by reference.
type CharacterSource interface {
	FetchCharacter(ctx context.Context, ref string) (swapi.Character, error)
}

// Row is one fetched character together with its position in the film's
// reference list and the arrival sequence.
type Row struct {
	Index     int
	Arrival   int
	Character swapi.Character
}

// Progress is published after every successful fetch.
type Progress struct {
	Row Row
	// Loaded and Total are the count and height sum including Row.
	Loaded int
	Total  float64
}

// Aggregator fans out character fetches for one film and keeps a running
// height total.
type Aggregator struct {
	src    CharacterSource
	limit  int
	logger *log.Logger
}

// NewAggregator builds an Aggregator. A limit <= 0 leaves the fan-out
// unbounded. A nil logger discards output.
func NewAggregator(src CharacterSource, limit int, logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Aggregator{src: src, limit: limit, logger: logger}
}

// Run fetches every reference concurrently and calls publish once per
// success, in arrival order. Calls to publish are serialized.
//
// The first failure cancels the remaining fetches and is returned; nothing is
// published after it. Cancelling ctx stops the run and Run returns ctx.Err().
func (a *Aggregator) Run(ctx context.Context, refs []string, publish func(Progress)) error {
	if a == nil || a.src == nil {
		return fmt.Errorf("aggregator has no character source")
	}
	g, gctx := errgroup.WithContext(ctx)
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}

	var (
		mu     sync.Mutex
		loaded int
		total  float64
	)

	for idx, ref := range refs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			character, err := a.src.FetchCharacter(gctx, ref)
			if err != nil {
				return fmt.Errorf("fetch character %s: %w", ref, err)
			}

			mu.Lock()
			defer mu.Unlock()
			// A sibling may have failed while this fetch was in flight.
			if err := gctx.Err(); err != nil {
				return err
			}
			cm, ok := character.HeightCM()
			if !ok && character.Height != swapi.UnknownHeight {
				a.logger.Warn("non-numeric height counted as zero", "name", character.Name, "height", character.Height)
			}
			total += cm
			row := Row{Index: idx, Arrival: loaded, Character: character}
			loaded++
			if publish != nil {
				publish(Progress{Row: row, Loaded: loaded, Total: total})
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		// errgroup cancels gctx on success too; a parent cancel is reported.
		return ctx.Err()
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	return err
}
