package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/five82/swcrawl/internal/config"
	"github.com/five82/swcrawl/internal/crawl"
	"github.com/five82/swcrawl/internal/prefs"
	"github.com/five82/swcrawl/internal/state"
	"github.com/five82/swcrawl/internal/swapi"
)

// Pane identifies which pane receives navigation keys.
type Pane int

const (
	PaneFilms Pane = iota
	PaneCharacters
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    swapi.Catalog
	Store     *state.Store
	Config    config.Config
	Logger    *log.Logger
	ThemeName string
	SortName  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	client     swapi.Catalog
	store      *state.Store
	aggregator *crawl.Aggregator
	logger     *log.Logger
	logPath    string
	prefsPath  string

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	focus    Pane
	showHelp bool
	spinner  spinner.Model

	// Data state
	session state.Session

	// Film list
	filmCursor int
	filmOffset int

	// Character table
	sortMode      SortMode
	sortDesc      bool
	filterActive  bool
	filterInput   textinput.Model
	tableViewport viewport.Model

	// Aggregation run
	cancel  context.CancelFunc
	events  <-chan tea.Msg
	runID   string
	started time.Time

	// Log pane
	showLogs    bool
	logSeq      int
	logLines    []string
	logViewport viewport.Model
}

// New creates a new Bubble Tea model and marks the catalog as loading.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	store.BeginFilms()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	filter := textinput.New()
	filter.Prompt = "gender/ "
	filter.Placeholder = "male, female, n/a..."
	filter.CharLimit = 32

	return Model{
		ctx:           ctx,
		client:        opts.Client,
		store:         store,
		aggregator:    crawl.NewAggregator(opts.Client, opts.Config.Concurrency, logger.With("component", "crawl")),
		logger:        logger,
		logPath:       opts.Config.LogPath,
		prefsPath:     prefsPath,
		theme:         GetTheme(themeName),
		keys:          DefaultKeyMap(),
		spinner:       sp,
		session:       store.Snapshot(),
		sortMode:      ParseSortMode(opts.SortName),
		filterInput:   filter,
		tableViewport: viewport.New(0, 0),
		logViewport:   viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.client != nil {
		cmds = append(cmds, loadFilmsCmd(m.ctx, m.client))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case filmsLoadedMsg:
		m.handleFilmsLoaded(msg)
		return m, nil

	case characterMsg:
		if msg.gen != m.session.Generation {
			return m, nil
		}
		if m.store.AppendCharacter(msg.gen, msg.progress.Row) {
			m.sync()
		}
		return m, waitForEvent(m.events)

	case charactersDoneMsg:
		m.handleCharactersDone(msg)
		return m, nil

	case logTickMsg:
		if msg.seq != m.logSeq || !m.showLogs {
			return m, nil
		}
		return m, readLogsCmd(msg.seq, m.logPath)

	case logLinesMsg:
		if msg.seq != m.logSeq || !m.showLogs {
			return m, nil
		}
		m.handleLogLines(msg)
		return m, logTickCmd(msg.seq, LogRefreshInterval)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) handleFilmsLoaded(msg filmsLoadedMsg) {
	if msg.err != nil {
		m.store.FilmsFailed(msg.err)
		m.logger.Error("film catalog failed to load", "error", msg.err)
	} else {
		m.store.FilmsLoaded(msg.films)
		m.logger.Info("film catalog loaded", "count", len(msg.films))
	}
	m.filmCursor = 0
	m.filmOffset = 0
	m.sync()
}

func (m *Model) handleCharactersDone(msg charactersDoneMsg) {
	if !m.store.CharactersDone(msg.gen, msg.err) {
		return
	}
	m.cancelRun()
	m.sync()
	elapsed := time.Since(m.started).Round(time.Millisecond)
	switch {
	case msg.err == nil:
		m.logger.Info("character aggregation finished",
			"run", m.runID,
			"loaded", len(m.session.Rows),
			"total_cm", crawl.FormatCM(m.session.Total),
			"elapsed", elapsed)
	case errors.Is(msg.err, context.Canceled):
		m.logger.Debug("character aggregation cancelled", "run", m.runID)
	default:
		m.logger.Error("character aggregation failed",
			"run", m.runID,
			"loaded", len(m.session.Rows),
			"error", msg.err)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.filterActive {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelRun()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focus == PaneFilms {
			m.focus = PaneCharacters
		} else {
			m.focus = PaneFilms
		}
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.showLogs = !m.showLogs
		m.resize()
		if !m.showLogs {
			return m, nil
		}
		m.logSeq++
		return m, readLogsCmd(m.logSeq, m.logPath)

	case key.Matches(msg, m.keys.CycleSort):
		m.sortMode = m.sortMode.Next()
		m.savePrefs()
		m.refreshTable()
		m.tableViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.ReverseSort):
		m.sortDesc = !m.sortDesc
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterActive = true
		m.resize()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.resize()
		}
		return m, nil
	}

	if m.focus == PaneFilms {
		return m.handleFilmsKey(msg)
	}
	return m.handleCharactersKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancelRun()
		return m, tea.Quit
	case "enter":
		m.filterActive = false
		m.filterInput.Blur()
		m.resize()
		return m, nil
	case "esc":
		m.filterActive = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refreshTable()
	m.tableViewport.GotoTop()
	return m, cmd
}

func (m Model) handleFilmsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.session.Films)
	if count == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFilmCursor(m.filmCursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveFilmCursor(m.filmCursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveFilmCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveFilmCursor(count - 1)
	case key.Matches(msg, m.keys.Select):
		return m, m.selectFilm(m.filmCursor)
	}
	return m, nil
}

func (m Model) handleCharactersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tableViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.tableViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.tableViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.tableViewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.tableViewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.tableViewport.HalfPageDown()
	}
	return m, nil
}

// moveFilmCursor clamps the cursor and keeps it inside the visible window.
func (m *Model) moveFilmCursor(to int) {
	count := len(m.session.Films)
	if count == 0 {
		m.filmCursor, m.filmOffset = 0, 0
		return
	}
	m.filmCursor = min(max(to, 0), count-1)
	visible := max(m.filmListHeight(), 1)
	if m.filmCursor < m.filmOffset {
		m.filmOffset = m.filmCursor
	}
	if m.filmCursor >= m.filmOffset+visible {
		m.filmOffset = m.filmCursor - visible + 1
	}
}

// selectFilm resets the session for film i and starts its aggregation run,
// cancelling any run still in flight.
func (m *Model) selectFilm(i int) tea.Cmd {
	gen, refs, ok := m.store.Select(i)
	if !ok {
		return nil
	}
	m.cancelRun()
	m.sync()
	m.tableViewport.GotoTop()

	film, _ := m.session.SelectedFilm()
	m.runID = newRunID()
	m.started = time.Now()
	m.logger.Info("character aggregation started",
		"run", m.runID,
		"film", film.Title,
		"characters", len(refs))

	if len(refs) == 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.events = startAggregation(ctx, m.aggregator, gen, refs)
	return tea.Batch(waitForEvent(m.events), m.spinner.Tick)
}

// cancelRun stops the in-flight aggregation, if any.
func (m *Model) cancelRun() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.events = nil
}

// sync copies the store's session into the model and re-renders the table.
func (m *Model) sync() {
	m.session = m.store.Snapshot()
	m.resize()
}

func (m Model) loading() bool {
	return m.session.FilmsLoading || m.session.CharactersLoading
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Sort: m.sortMode.String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// resize recomputes pane dimensions after a size or layout change.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	_, tableWidth, tableHeight := m.tableGeometry()
	m.tableViewport.Width = tableWidth
	m.tableViewport.Height = tableHeight
	m.logViewport.Width = max(m.width-2, 0)
	m.logViewport.Height = LogPaneHeight - 2
	m.moveFilmCursor(m.filmCursor)
	m.refreshTable()
}

// contentHeight is the height left for the two panes.
func (m Model) contentHeight() int {
	h := m.height - 2 // header + command bar
	if m.showLogs {
		h -= LogPaneHeight
	}
	return max(h, 3)
}

func (m Model) filmListHeight() int {
	return m.contentHeight() - 2
}

// tableGeometry returns the character pane width and the size of its
// scrolling row area.
func (m Model) tableGeometry() (paneWidth, rowsWidth, rowsHeight int) {
	paneWidth = m.width - filmPaneWidth(m.width)
	inner := m.contentHeight() - 2
	// column header, rule, footer rule, footer
	fixed := 4
	if m.filterShown() {
		fixed++
	}
	if errors.Is(m.session.LastError, state.ErrCharactersLoad) {
		fixed++
	}
	return paneWidth, max(paneWidth-2, 0), max(inner-fixed, 1)
}

func (m Model) filterShown() bool {
	return m.filterActive || m.filterInput.Value() != ""
}

func newRunID() string {
	return uuid.NewString()[:8]
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, progOpts...)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.cancelRun()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// paneBackground returns the background for a pane given focus.
func (m Model) paneBackground(p Pane) string {
	if m.focus == p {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}
