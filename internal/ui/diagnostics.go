package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/animeshelf/internal/logtail"
)

const diagnosticsLines = 400

// diagnosticsState backs the L overlay showing the tail of the log file.
type diagnosticsState struct {
	open     bool
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
}

type diagnosticsMsg struct {
	entries []logtail.Entry
	err     error
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		entries, err := logtail.ReadEntries(path, diagnosticsLines)
		return diagnosticsMsg{entries: entries, err: err}
	}
}

func (m *Model) openDiagnostics() tea.Cmd {
	m.diag.open = true
	m.resizeDiagnostics()
	return loadDiagnosticsCmd(m.logPath)
}

func (m *Model) resizeDiagnostics() {
	height := max(1, m.height-2)
	if m.diag.viewport.Width == 0 && m.diag.viewport.Height == 0 {
		m.diag.viewport = viewport.New(m.width, height)
	} else {
		m.diag.viewport.Width = m.width
		m.diag.viewport.Height = height
	}
	m.diag.viewport.SetContent(m.diagnosticsContent())
}

func (m *Model) handleDiagnostics(msg diagnosticsMsg) {
	m.diag.entries = msg.entries
	m.diag.err = msg.err
	if msg.err != nil {
		m.logger.Warn("Could not read diagnostics log", zap.String("path", m.logPath), zap.Error(msg.err))
	}
	m.diag.viewport.SetContent(m.diagnosticsContent())
	m.diag.viewport.GotoBottom()
}

func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Diagnostics):
		m.diag.open = false
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		return m, loadDiagnosticsCmd(m.logPath)
	}

	var cmd tea.Cmd
	m.diag.viewport, cmd = m.diag.viewport.Update(msg)
	return m, cmd
}

func (m Model) diagnosticsContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logPath == "":
		return styles.MutedText.Render("Logging is disabled.")
	case m.diag.err != nil:
		return styles.DangerText.Render("Could not read " + m.logPath)
	case len(m.diag.entries) == 0:
		return styles.MutedText.Render("No log entries yet.")
	}

	var b strings.Builder
	for i, e := range m.diag.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		if e.Raw != "" {
			b.WriteString(styles.Text.Render(e.Raw))
			continue
		}
		if e.Time != "" {
			b.WriteString(styles.FaintText.Render(e.Time))
			b.WriteString(" ")
		}
		b.WriteString(styles.LevelStyle(e.Level).Render(padRight(e.Level, 5)))
		b.WriteString(" ")
		if e.Logger != "" {
			b.WriteString(styles.AccentText.Render("[" + e.Logger + "]"))
			b.WriteString(" ")
		}
		b.WriteString(styles.Text.Render(e.Message))
		for _, f := range e.Fields {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(f.Key + "="))
			b.WriteString(styles.Text.Render(f.Value))
		}
	}
	return b.String()
}

func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	title := bg.Spaces(1) + bg.Render("Diagnostics", styles.Logo)
	if m.logPath != "" {
		title += bg.Spaces(1) + bg.Render(truncateMiddle(m.logPath, max(10, m.width-20)), styles.MutedText)
	}
	hints := bg.Spaces(1) + bg.Join([]string{
		bg.Render("r", styles.WarningText) + bg.Spaces(1) + bg.Render("Reload", styles.MutedText),
		bg.Render("esc", styles.WarningText) + bg.Spaces(1) + bg.Render("Back", styles.MutedText),
	}, "  ")

	return bg.FillLine(title, m.width) + "\n" +
		bg.FillLine(hints, m.width) + "\n" +
		m.diag.viewport.View()
}
