package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/logtail"
	"github.com/five82/swcrawl/internal/swapi"
)

// Messages

type filmsLoadedMsg struct {
	films []swapi.Film
	err   error
}

// characterMsg carries one published row for aggregation generation gen.
type characterMsg struct {
	gen      uint64
	progress crawl.Progress
}

// charactersDoneMsg is sent once per aggregation run, after every fetch
// has settled or the run was cancelled.
type charactersDoneMsg struct {
	gen uint64
	err error
}

type logTickMsg struct{ seq int }

type logLinesMsg struct {
	seq   int
	lines []string
	err   error
}

// Commands

func loadFilmsCmd(ctx context.Context, src crawl.FilmSource) tea.Cmd {
	return func() tea.Msg {
		films, err := crawl.LoadCatalog(ctx, src)
		return filmsLoadedMsg{films: films, err: err}
	}
}

// startAggregation runs agg in the background and returns the channel its
// events arrive on. The channel is buffered for every event the run can
// produce, so an abandoned run never blocks; it is closed after the done
// event.
func startAggregation(ctx context.Context, agg *crawl.Aggregator, gen uint64, refs []string) <-chan tea.Msg {
	events := make(chan tea.Msg, len(refs)+1)
	go func() {
		defer close(events)
		err := agg.Run(ctx, refs, func(p crawl.Progress) {
			events <- characterMsg{gen: gen, progress: p}
		})
		events <- charactersDoneMsg{gen: gen, err: err}
	}()
	return events
}

// waitForEvent reads the next aggregation event.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func logTickCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return logTickMsg{seq: seq}
	})
}

func readLogsCmd(seq int, path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Tail(path, LogTailLines)
		return logLinesMsg{seq: seq, lines: lines, err: err}
	}
}
