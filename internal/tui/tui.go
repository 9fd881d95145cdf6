// Package tui provides the Bubble Tea terminal interface for groover.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/groover/internal/debounce"
	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/playlist"
	"github.com/handiism/groover/internal/session"
	"go.uber.org/zap"
)

// Mode is what currently receives key presses.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeRecord
	ModeCreate
	ModeRename
	ModePick
)

// Options configures a Model.
type Options struct {
	// Exporter writes the selected playlist on "x". Export is disabled
	// when nil.
	Exporter *export.Exporter

	Logger      *zap.Logger
	SearchDelay time.Duration
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	session   *session.Session
	exporter  *export.Exporter
	logger    *zap.Logger
	debouncer *debounce.Debouncer

	mode      Mode
	search    textinput.Model
	nameInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model

	// Search state
	results      []session.SearchResult
	resultCursor int
	searchToken  debounce.Token
	searching    bool
	searched     bool

	libCursor    int
	record       model.Item
	recordCursor int

	plCursor    int
	trackCursor int
	pickCursor  int
	focusTracks bool
	renameID    string
	exporting   bool

	status    string
	statusErr bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a TUI model over a session.
func NewModel(sess *session.Session, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	si := textinput.New()
	si.Placeholder = "Search records by title, artist or genre"
	si.Prompt = "/ "
	si.CharLimit = 100
	si.Width = 50

	ni := textinput.New()
	ni.Placeholder = "Playlist name"
	ni.CharLimit = 80
	ni.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 40

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		session:   sess,
		exporter:  opts.Exporter,
		logger:    opts.Logger,
		debouncer: debounce.New(opts.SearchDelay, opts.Logger),
		mode:      ModeBrowse,
		search:    si,
		nameInput: ni,
		spinner:   sp,
		progress:  prog,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// searchMsg is delivered after the debounce delay of one keystroke.
	searchMsg struct {
		token debounce.Token
	}

	// exportDoneMsg is sent when a playlist export finishes.
	exportDoneMsg struct {
		result export.Result
		err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 30
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case searchMsg:
		if !m.debouncer.Ready(msg.token) {
			return m, nil
		}
		m.runSearch()
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.setError(fmt.Errorf("export failed: %w", msg.err))
			return m, nil
		}
		m.setStatus(fmt.Sprintf("Exported %q (%d records) to %s", msg.result.Name, msg.result.Entries, msg.result.Path))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeSearch:
		return m.updateSearch(msg)
	case ModeRecord:
		return m.updateRecord(msg)
	case ModeCreate:
		return m.updateCreate(msg)
	case ModeRename:
		return m.updateRename(msg)
	case ModePick:
		return m.updatePick(msg)
	}

	switch msg.String() {
	case "q":
		m.cancel()
		return m, tea.Quit
	case "/":
		m.mode = ModeSearch
		cmd := m.search.Focus()
		return m, cmd
	case "tab":
		m.switchView(m.session.View().Next(), "")
		return m, nil
	case "g":
		m.switchView(model.ViewDashboard, "")
		return m, nil
	case "l":
		m.switchView(model.ViewLibrary, "")
		return m, nil
	case "p":
		m.switchView(model.ViewPlaylists, "")
		return m, nil
	}

	switch m.session.View() {
	case model.ViewDashboard:
		return m.updateDashboard(msg)
	case model.ViewLibrary:
		return m.updateLibrary(msg)
	case model.ViewPlaylists:
		return m.updatePlaylists(msg)
	}
	return m, nil
}

func (m *Model) switchView(v model.View, filter model.KindFilter) {
	m.session.SetView(v, filter)
	m.libCursor = 0
	m.focusTracks = false
	m.trackCursor = 0
}

// Search bar

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeSearch()
		return m, nil
	case "up":
		m.resultCursor = moveCursor(m.resultCursor, -1, len(m.results))
		return m, nil
	case "down":
		m.resultCursor = moveCursor(m.resultCursor, 1, len(m.results))
		return m, nil
	case "enter":
		// Results still belong to the previous query until the search runs.
		if !m.searching {
			m.addResultToLibrary()
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}

	if strings.TrimSpace(m.search.Value()) == "" {
		m.debouncer.Cancel()
		m.results = nil
		m.searching = false
		m.searched = false
		return m, cmd
	}

	m.searchToken = m.debouncer.Schedule()
	m.searching = true
	tok := m.searchToken
	tick := tea.Tick(m.debouncer.Delay(), func(time.Time) tea.Msg {
		return searchMsg{token: tok}
	})
	return m, tea.Batch(cmd, tick, m.spinner.Tick)
}

func (m *Model) runSearch() {
	m.results = m.session.Search(m.search.Value())
	m.resultCursor = 0
	m.searching = false
	m.searched = true
}

func (m *Model) closeSearch() {
	m.debouncer.Cancel()
	m.search.SetValue("")
	m.search.Blur()
	m.results = nil
	m.resultCursor = 0
	m.searching = false
	m.searched = false
	m.mode = ModeBrowse
}

func (m *Model) addResultToLibrary() {
	if m.resultCursor >= len(m.results) {
		return
	}
	res := m.results[m.resultCursor]
	added, err := m.session.AddToLibrary(res.Item.ID)
	if err != nil {
		m.setError(err)
		return
	}
	m.results[m.resultCursor].InLibrary = true
	if added {
		m.setStatus(fmt.Sprintf("Added %q to your library", res.Item.Title))
	} else {
		m.setStatus(fmt.Sprintf("%q is already in your library", res.Item.Title))
	}
}

// Dashboard

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.switchView(model.ViewLibrary, model.FilterVinyl)
	case "2":
		m.switchView(model.ViewLibrary, model.FilterCD)
	case "3":
		m.switchView(model.ViewLibrary, model.FilterAll)
	case "4":
		m.switchView(model.ViewPlaylists, "")
	}
	return m, nil
}

// Library

func (m Model) updateLibrary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.session.LibraryItems()

	switch msg.String() {
	case "f":
		m.session.SetFilter(m.session.Filter().Next())
		m.libCursor = 0
	case "up", "k":
		m.libCursor = moveCursor(m.libCursor, -1, len(items))
	case "down", "j":
		m.libCursor = moveCursor(m.libCursor, 1, len(items))
	case "enter":
		if m.libCursor < len(items) {
			m.record = items[m.libCursor]
			m.recordCursor = 0
			m.mode = ModeRecord
		}
	}
	return m, nil
}

func (m Model) updateRecord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lists := m.session.Playlists().List()

	switch msg.String() {
	case "esc", "q":
		m.mode = ModeBrowse
	case "up", "k":
		m.recordCursor = moveCursor(m.recordCursor, -1, len(lists))
	case "down", "j":
		m.recordCursor = moveCursor(m.recordCursor, 1, len(lists))
	case "enter":
		if m.recordCursor >= len(lists) {
			return m, nil
		}
		pl := lists[m.recordCursor]
		m.addToPlaylist(pl, m.record)
		m.mode = ModeBrowse
	}
	return m, nil
}

func (m *Model) addToPlaylist(pl model.Playlist, it model.Item) {
	added, err := m.session.AddToPlaylist(pl.ID, it.ID)
	switch {
	case err != nil:
		m.setError(err)
	case added:
		m.setStatus(fmt.Sprintf("Added %q to %s", it.Title, pl.Name))
	default:
		m.setStatus(fmt.Sprintf("%q is already in %s", it.Title, pl.Name))
	}
}

// Playlists

func (m Model) updatePlaylists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lists := m.session.Playlists().List()
	selected, hasSelected := m.session.Selected()

	switch msg.String() {
	case "up", "k":
		if m.focusTracks {
			m.trackCursor = moveCursor(m.trackCursor, -1, selected.Len())
		} else {
			m.plCursor = moveCursor(m.plCursor, -1, len(lists))
		}
	case "down", "j":
		if m.focusTracks {
			m.trackCursor = moveCursor(m.trackCursor, 1, selected.Len())
		} else {
			m.plCursor = moveCursor(m.plCursor, 1, len(lists))
		}
	case "esc":
		m.focusTracks = false
	case "enter":
		if m.plCursor < len(lists) {
			if err := m.session.SelectPlaylist(lists[m.plCursor].ID); err != nil {
				m.setError(err)
				return m, nil
			}
			m.focusTracks = true
			m.trackCursor = 0
		}
	case "n":
		m.mode = ModeCreate
		m.nameInput.SetValue("")
		cmd := m.nameInput.Focus()
		return m, cmd
	case "e":
		if m.plCursor < len(lists) {
			pl := lists[m.plCursor]
			m.mode = ModeRename
			m.renameID = pl.ID
			m.nameInput.SetValue(pl.Name)
			m.nameInput.CursorEnd()
			cmd := m.nameInput.Focus()
			return m, cmd
		}
	case "d":
		if m.plCursor < len(lists) {
			pl := lists[m.plCursor]
			if err := m.session.DeletePlaylist(pl.ID); err != nil {
				m.setError(err)
				return m, nil
			}
			m.plCursor = clampCursor(m.plCursor, len(lists)-2)
			if _, ok := m.session.Selected(); !ok {
				m.focusTracks = false
			}
			m.setStatus(fmt.Sprintf("Deleted playlist %s", pl.Name))
		}
	case "r":
		// Only a highlighted track can be removed.
		if m.focusTracks && hasSelected && m.trackCursor < selected.Len() {
			it := selected.Items[m.trackCursor]
			if _, err := m.session.RemoveFromPlaylist(selected.ID, it.ID); err != nil {
				m.setError(err)
				return m, nil
			}
			m.trackCursor = clampCursor(m.trackCursor, selected.Len()-2)
			m.setStatus(fmt.Sprintf("Removed %q from %s", it.Title, selected.Name))
		}
	case "a":
		if !hasSelected {
			m.setError(errors.New("select a playlist first"))
			return m, nil
		}
		m.mode = ModePick
		m.pickCursor = 0
	case "x":
		if !hasSelected {
			m.setError(errors.New("select a playlist first"))
			return m, nil
		}
		if m.exporter == nil {
			m.setError(errors.New("export is not configured"))
			return m, nil
		}
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.setStatus(fmt.Sprintf("Exporting %s...", selected.Name))
		return m, tea.Batch(m.exportPlaylist(selected), m.spinner.Tick)
	}
	return m, nil
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeNameInput()
		return m, nil
	case "enter":
		pl, err := m.session.CreatePlaylist(m.nameInput.Value())
		if err != nil {
			// Keep the form open so the user can type a name.
			m.setError(err)
			return m, nil
		}
		m.closeNameInput()
		m.plCursor = m.session.Playlists().Len() - 1
		m.setStatus(fmt.Sprintf("Created playlist %s", pl.Name))
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeNameInput()
		return m, nil
	case "enter", "tab", "up", "down":
		// Leaving the field commits, like pressing enter.
		m.commitRename()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) commitRename() {
	id := m.renameID
	name := m.nameInput.Value()
	m.closeNameInput()

	pl, err := m.session.RenamePlaylist(id, name)
	if errors.Is(err, model.ErrEmptyName) {
		m.setError(errors.New("playlist name cannot be empty, kept the old name"))
		return
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Renamed playlist to %s", pl.Name))
}

func (m *Model) closeNameInput() {
	m.nameInput.Blur()
	m.nameInput.SetValue("")
	m.renameID = ""
	m.mode = ModeBrowse
}

func (m Model) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected, ok := m.session.Selected()
	if !ok {
		m.mode = ModeBrowse
		return m, nil
	}
	candidates, err := m.session.Candidates(selected.ID)
	if err != nil {
		m.setError(err)
		m.mode = ModeBrowse
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.mode = ModeBrowse
	case "up", "k":
		m.pickCursor = moveCursor(m.pickCursor, -1, len(candidates))
	case "down", "j":
		m.pickCursor = moveCursor(m.pickCursor, 1, len(candidates))
	case "enter":
		if m.pickCursor < len(candidates) {
			m.addToPlaylist(selected, candidates[m.pickCursor])
			m.pickCursor = clampCursor(m.pickCursor, len(candidates)-2)
		}
	}
	return m, nil
}

// exportPlaylist writes a playlist in the background.
func (m Model) exportPlaylist(pl model.Playlist) tea.Cmd {
	ctx := m.ctx
	exp := m.exporter
	logger := m.logger
	return func() tea.Msg {
		res, err := exp.Export(ctx, pl)
		if err != nil {
			logger.Error("Export failed", zap.String("playlist_id", pl.ID), zap.Error(err))
		}
		return exportDoneMsg{result: res, err: err}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	switch {
	case errors.Is(err, model.ErrEmptyName):
		m.status = "Playlist name cannot be empty"
	case errors.Is(err, playlist.ErrNotOwned):
		m.status = "Only records in your library can be added to a playlist"
	default:
		m.status = err.Error()
	}
	m.statusErr = true
}

func moveCursor(cur, delta, n int) int {
	return clampCursor(cur+delta, n-1)
}

func clampCursor(cur, last int) int {
	if cur > last {
		cur = last
	}
	if cur < 0 {
		cur = 0
	}
	return cur
}

// Run starts the TUI application.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
