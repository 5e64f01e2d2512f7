package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the modal closed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const (
	loginRequiredNotice = "Please login to add to favorites."
	saveFailedNotice    = "Could not save favorites."
)

// noticeModal is a blocking message acknowledged with enter or esc.
type noticeModal struct {
	message string
}

func newNotice(message string) Modal {
	return noticeModal{message: message}
}

func (n noticeModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return n, nil, false
	}
	if key.Matches(keyMsg, keys.ForceQuit) {
		return n, tea.Quit, true
	}
	if key.Matches(keyMsg, keys.Dismiss) {
		return n, nil, true
	}
	return n, nil, false
}

func (n noticeModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Text.Bold(true).Render(n.message),
		"",
		styles.FaintText.Render("[ OK ]  enter"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Warning)).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
