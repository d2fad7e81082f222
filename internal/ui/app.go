package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajgould/bookdeck/internal/catalog"
	"github.com/ajgould/bookdeck/internal/prefs"
	"github.com/ajgould/bookdeck/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewForm
)

type pingStatus int

const (
	pingUnknown pingStatus = iota
	pingOK
	pingFailed
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     catalog.API
	Store      *state.Store
	BackendURL string
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	client     catalog.API
	store      *state.Store
	backendURL string
	prefsPath  string

	// UI state
	theme  Theme
	keys   keyMap
	width  int
	height int
	ready  bool

	currentView View
	showHelp    bool

	// Data state
	snapshot state.Snapshot

	// List state
	selected   int
	expandedID int64
	summary    viewport.Model

	// Filter state. filterOptions comes from the most recent unfiltered
	// fetch; a filtered snapshot only derives the categories still on
	// screen, which would collapse the cycle.
	searchInput   textinput.Model
	searching     bool
	query         catalog.Query
	filterOptions []string

	// Form state
	form formModel

	// Sync state. bannerHoldSeq marks the fetch issued after a failed
	// delete; its success must not wipe the delete banner.
	loading       bool
	listSeq       uint64
	bannerHoldSeq uint64
	submitting    bool
	errorMsg      string
	spin          spinner.Model
	ping          pingStatus

	// Delete confirmation; nil when no modal is open.
	confirm *catalog.Book
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Placeholder = "title or author"
	search.Prompt = "/ "
	search.CharLimit = 256

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		backendURL:  opts.BackendURL,
		prefsPath:   opts.PrefsPath,
		theme:       GetTheme(opts.ThemeName),
		keys:        defaultKeyMap(),
		currentView: ViewList,
		searchInput: search,
		form:        newFormModel(),
		spin:        spin,
	}
}

// Init implements tea.Model. The initial unfiltered list fetch is triggered
// through a message so the fetch sequence is registered on the event loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		func() tea.Msg { return initMsg{} },
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.summary = viewport.New(msg.Width-6, summaryHeight(msg.Height))
		} else {
			m.summary.Width = msg.Width - 6
			m.summary.Height = summaryHeight(msg.Height)
		}
		m.form.setWidth(msg.Width - 26)
		m.searchInput.Width = msg.Width - 12
		m.ready = true
		return m, nil

	case initMsg:
		return m, tea.Batch(m.fetchList(), m.spin.Tick, m.pingCmd())

	case spinner.TickMsg:
		if !m.loading && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case listResultMsg:
		return m.handleListResult(msg)

	case createResultMsg:
		return m.handleCreateResult(msg)

	case deleteResultMsg:
		return m.handleDeleteResult(msg)

	case pingResultMsg:
		if msg.err != nil {
			m.ping = pingFailed
		} else {
			m.ping = pingOK
		}
		return m, nil
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
	if m.confirm != nil {
		return m.renderConfirm()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if banner := m.renderBanner(); banner != "" {
		b.WriteString(banner)
		b.WriteString("\n")
	}
	switch m.currentView {
	case ViewForm:
		b.WriteString(m.form.view(m.theme, m.width))
	default:
		b.WriteString(m.renderList())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type initMsg struct{}

type listResultMsg struct {
	seq     uint64
	applied bool
	query   catalog.Query
	snap    state.Snapshot
}

type createResultMsg struct{ err error }

type deleteResultMsg struct{ err error }

type pingResultMsg struct{ err error }

// Commands

// fetchList issues a sequenced list fetch with the currently active filters.
// It flips the loading flag; the flag clears when the matching result lands.
func (m *Model) fetchList() tea.Cmd {
	seq := m.store.Begin()
	m.listSeq = seq
	m.loading = true

	ctx, client, store, query := m.ctx, m.client, m.store, m.query
	return func() tea.Msg {
		books, err := client.ListBooks(ctx, query)
		applied := store.Apply(seq, books, err)
		return listResultMsg{seq: seq, applied: applied, query: query, snap: store.Snapshot()}
	}
}

func (m *Model) createCmd(draft catalog.Draft) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return createResultMsg{err: client.CreateBook(ctx, draft)}
	}
}

func (m *Model) deleteCmd(id int64) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return deleteResultMsg{err: client.DeleteBook(ctx, id)}
	}
}

func (m *Model) pingCmd() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		return pingResultMsg{err: client.Ping(ctx)}
	}
}

// Result handling

func (m Model) handleListResult(msg listResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq == m.listSeq {
		m.loading = false
	}
	if !msg.applied {
		// Stale response: a newer fetch owns the screen.
		return m, nil
	}

	m.snapshot = msg.snap
	if msg.snap.LastError != nil {
		m.errorMsg = errorText(msg.snap.LastError, "Failed to load books")
		return m, nil
	}

	// A successful fetch clears the banner and reconciles selection state
	// with the fresh list. The fetch that follows a failed delete keeps
	// the banner up for one round so the failure is actually seen.
	if msg.seq == m.bannerHoldSeq {
		m.bannerHoldSeq = 0
	} else {
		m.errorMsg = ""
	}
	if msg.query.IsZero() {
		m.filterOptions = msg.snap.Categories
	}
	if m.selected >= len(m.snapshot.Books) {
		m.selected = len(m.snapshot.Books) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.expandedID != 0 {
		if b := m.bookByID(m.expandedID); b != nil {
			m.summary.SetContent(m.summaryContent(*b))
		} else {
			m.expandedID = 0
		}
	}
	return m, nil
}

func (m Model) handleCreateResult(msg createResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		// The draft stays in the form so the user can correct and resubmit.
		m.errorMsg = errorText(msg.err, "Failed to add book")
		return m, nil
	}
	m.form.reset()
	m.currentView = ViewList
	m.errorMsg = ""
	return m, tea.Batch(m.fetchList(), m.spin.Tick)
}

func (m Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	// The list is re-fetched regardless of the delete outcome.
	cmd := tea.Batch(m.fetchList(), m.spin.Tick)
	if msg.err != nil {
		m.errorMsg = "Delete failed"
		m.bannerHoldSeq = m.listSeq
	}
	return m, cmd
}

// Key handling

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	switch m.currentView {
	case ViewForm:
		return m.handleFormKey(msg)
	default:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.currentView = ViewForm
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.query.Text)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.fetchList(), m.spin.Tick)

	case key.Matches(msg, m.keys.CycleCategory):
		// Cycling the filter is the explicit action; it re-fetches
		// immediately with the new combination.
		m.query.Category = nextCategory(m.filterOptions, m.query.Category)
		return m, tea.Batch(m.fetchList(), m.spin.Tick)

	case key.Matches(msg, m.keys.PingBackend):
		m.ping = pingUnknown
		return m, m.pingCmd()

	case key.Matches(msg, m.keys.Delete):
		if b := m.selectedBook(); b != nil {
			book := *b
			m.confirm = &book
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		if b := m.selectedBook(); b != nil {
			if m.expandedID == b.ID {
				m.expandedID = 0
			} else {
				// Expanding one entry collapses any other.
				m.expandedID = b.ID
				m.summary.SetContent(m.summaryContent(*b))
				m.summary.GotoTop()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.expandedID != 0 {
			m.expandedID = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.snapshot.Books)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.snapshot.Books); n > 0 {
			m.selected = n - 1
		}
		return m, nil
	}

	if m.expandedID != 0 {
		// Remaining keys scroll the expanded summary pane.
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.query.Text = strings.TrimSpace(m.searchInput.Value())
		m.searching = false
		m.searchInput.Blur()
		return m, tea.Batch(m.fetchList(), m.spin.Tick)

	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.query.Text)
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Leaving the form is the explicit reset.
		m.form.reset()
		m.currentView = ViewList
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.form.nextField()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.prevField()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// submitForm validates the draft locally; an invalid draft never reaches the
// network.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	draft := m.form.draft()
	if err := draft.Validate(); err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}
	m.submitting = true
	m.errorMsg = ""
	return m, tea.Batch(m.createCmd(draft), m.spin.Tick)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "enter":
		book := *m.confirm
		m.confirm = nil
		if m.expandedID == book.ID {
			m.expandedID = 0
		}
		return m, tea.Batch(m.deleteCmd(book.ID), m.spin.Tick)
	case "n", "esc", "q":
		// Declined: no request is made.
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

// Helpers

func (m *Model) selectedBook() *catalog.Book {
	if m.selected < 0 || m.selected >= len(m.snapshot.Books) {
		return nil
	}
	return &m.snapshot.Books[m.selected]
}

func (m *Model) bookByID(id int64) *catalog.Book {
	for i := range m.snapshot.Books {
		if m.snapshot.Books[i].ID == id {
			return &m.snapshot.Books[i]
		}
	}
	return nil
}

// nextCategory advances the filter through the derived options, with the
// empty string standing for "all categories".
func nextCategory(options []string, current string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, c := range options {
		if c == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}

// errorText prefers the backend's own message and falls back per operation.
func errorText(err error, fallback string) string {
	var statusErr *catalog.StatusError
	if errors.As(err, &statusErr) {
		if strings.TrimSpace(statusErr.Message) != "" {
			return statusErr.Message
		}
		return fallback
	}
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		return err.Error()
	}
	return fallback
}

func summaryHeight(height int) int {
	h := height / 3
	if h < 5 {
		h = 5
	}
	return h
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
