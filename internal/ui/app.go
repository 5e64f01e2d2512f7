package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/animeshelf/internal/catalog"
	"github.com/five82/animeshelf/internal/favorites"
	"github.com/five82/animeshelf/internal/kv"
	"github.com/five82/animeshelf/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    *catalog.Loader
	Favorites *favorites.Store
	Prefs     kv.Store // where theme changes are saved; nil disables saving
	Logger    *zap.Logger
	ThemeName string
	LogPath   string // shown by the diagnostics overlay
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx        context.Context
	loader     *catalog.Loader
	favorites  *favorites.Store
	prefsStore kv.Store
	logger     *zap.Logger
	logPath    string

	// UI state
	keys    keyMap
	theme   Theme
	width   int
	height  int
	ready   bool
	spinner spinner.Model

	// Data state
	load     catalog.LoadState
	user     *favorites.User
	selected int

	// Overlays
	notice   Modal
	showHelp bool
	diag     diagnosticsState
}

// New creates a new Bubble Tea model in the Loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	theme := GetTheme(themeName)

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:        ctx,
		loader:     opts.Loader,
		favorites:  opts.Favorites,
		prefsStore: opts.Prefs,
		logger:     logger.Named("ui"),
		logPath:    opts.LogPath,
		keys:       DefaultKeyMap(),
		theme:      theme,
		spinner:    spin,
		load:       catalog.Loading(),
	}
}

// Init implements tea.Model. The catalog fetch and the user read run
// concurrently; each reports back exactly once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadCatalogCmd(m.ctx, m.loader),
		loadUserCmd(m.ctx, m.favorites),
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
		m.ready = true
		if m.diag.open {
			m.resizeDiagnostics()
		}
		return m, nil

	case spinner.TickMsg:
		if m.load.Phase != catalog.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogMsg:
		// Loading is left exactly once; later results are ignored.
		if m.load.Phase != catalog.PhaseLoading {
			return m, nil
		}
		m.load = catalog.LoadState(msg)
		m.selected = min(m.selected, max(0, len(m.load.Items)-1))
		return m, nil

	case userMsg:
		if msg.err != nil {
			m.logger.Warn("Could not read user record, continuing as guest", zap.Error(msg.err))
			m.user = nil
			return m, nil
		}
		m.user = msg.user
		return m, nil

	case diagnosticsMsg:
		m.handleDiagnostics(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.notice != nil {
		return m.notice.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.diag.open {
		return m.renderDiagnostics()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent(max(1, m.height-2)))
	return b.String()
}

// renderContent renders the body for the current load phase.
func (m Model) renderContent(height int) string {
	styles := m.theme.Styles()
	switch m.load.Phase {
	case catalog.PhaseFailed:
		return styles.DangerText.Render("Error: " + m.load.Message)
	case catalog.PhaseLoaded:
		return m.renderGrid(m.load.Items, height)
	default:
		return m.spinner.View() + " " + styles.MutedText.Render("Loading anime...")
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The notice blocks everything except its own dismissal.
	if m.notice != nil {
		next, cmd, closed := m.notice.Update(msg, m.keys)
		if closed {
			m.notice = nil
		} else {
			m.notice = next
		}
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m.showHelp = false
		return m, nil
	}

	if m.diag.open {
		return m.handleDiagnosticsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		cmd := m.openDiagnostics()
		return m, cmd
	}

	return m.handleGridKey(msg)
}

// handleGridKey moves the selection and toggles favorites on the grid.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.load.Phase != catalog.PhaseLoaded {
		return m, nil
	}
	count := len(m.load.Items)
	if count == 0 {
		return m, nil
	}
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Right):
		m.selected = min(m.selected+1, count-1)
	case key.Matches(msg, m.keys.Left):
		m.selected = max(m.selected-1, 0)
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < count {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	case key.Matches(msg, m.keys.ToggleLike):
		m.toggleFavorite(m.load.Items[m.selected])
	}
	return m, nil
}

// toggleFavorite flips item in the user's favorites and persists the whole
// record before the in-memory copy changes. Without a user only the login
// notice is shown and storage is not touched.
func (m *Model) toggleFavorite(item catalog.Item) {
	if m.user == nil {
		m.notice = newNotice(loginRequiredNotice)
		return
	}

	next := favorites.Toggle(*m.user, item.ID)
	if m.favorites == nil {
		m.notice = newNotice(saveFailedNotice)
		return
	}
	if err := m.favorites.Persist(m.ctx, next); err != nil {
		m.logger.Error("Could not save favorites", zap.Int64("item", item.ID), zap.Error(err))
		m.notice = newNotice(saveFailedNotice)
		return
	}
	m.user = &next
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	if m.prefsStore == nil {
		return
	}
	if err := prefs.Save(m.ctx, m.prefsStore, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("Could not save theme preference", zap.Error(err))
	}
}

// Messages

type catalogMsg catalog.LoadState

type userMsg struct {
	user *favorites.User
	err  error
}

// Commands

func loadCatalogCmd(ctx context.Context, loader *catalog.Loader) tea.Cmd {
	return func() tea.Msg {
		return catalogMsg(loader.Load(ctx))
	}
}

func loadUserCmd(ctx context.Context, store *favorites.Store) tea.Cmd {
	return func() tea.Msg {
		if store == nil {
			return userMsg{}
		}
		u, err := store.CurrentUser(ctx)
		return userMsg{user: u, err: err}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
