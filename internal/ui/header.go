package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/animeshelf/internal/catalog"
)

// renderHeader renders the title bar: logo, item count and who is signed in.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("Saved Animes", styles.Logo)}

	switch m.load.Phase {
	case catalog.PhaseLoading:
		parts = append(parts, bg.Render("loading", styles.MutedText))
	case catalog.PhaseFailed:
		parts = append(parts, bg.Render("unavailable", styles.DangerText))
	case catalog.PhaseLoaded:
		parts = append(parts, bg.Render(fmt.Sprintf("%d titles", len(m.load.Items)), styles.Text))
		if m.user != nil {
			parts = append(parts, bg.Render(fmt.Sprintf("%d liked", len(m.user.Favorites)), styles.UnlikeButton))
		}
	}

	if m.user != nil {
		parts = append(parts, bg.Render("user "+truncate(m.user.ID, 20), styles.AccentText))
	} else {
		parts = append(parts, bg.Render("guest", styles.WarningText))
	}

	line := bg.Spaces(1) + bg.Join(parts, " · ")
	return bg.FillLine(line, m.width)
}

// renderCommandBar lists the keys that matter on the main grid.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	bindings := []key.Binding{m.keys.ToggleLike, m.keys.Diagnostics, m.keys.CycleTheme, m.keys.Help, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}

	line := bg.Spaces(1) + bg.Join(parts, "  ")
	return bg.FillLine(line, m.width)
}
