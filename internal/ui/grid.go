package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/animeshelf/internal/catalog"
)

const (
	cardTextWidth  = 26
	cardGap        = 1
	cardOuterWidth = cardTextWidth + 4 // padding + border
	cardHeight     = 7                 // five content lines + border
	titleLines     = 2

	likeLabel   = "[ Like ]"
	unlikeLabel = "[ Unlike ]"
)

// columns is how many cards fit side by side at the current width.
func (m Model) columns() int {
	return max(1, (m.width+cardGap)/(cardOuterWidth+cardGap))
}

// liked reports whether item is in the current user's favorites. There is
// no per-card state; the label always follows the user record.
func (m Model) liked(item catalog.Item) bool {
	return m.user != nil && m.user.Has(item.ID)
}

// renderCards renders one card per catalog item, in catalog order.
func (m Model) renderCards(items []catalog.Item) []string {
	styles := m.theme.Styles()
	cards := make([]string, len(items))
	for i, item := range items {
		cards[i] = m.renderCard(styles, item, i == m.selected)
	}
	return cards
}

func (m Model) renderCard(styles Styles, item catalog.Item, selected bool) string {
	lines := make([]string, 0, 5)

	title := wrapLines(item.Title, cardTextWidth, titleLines)
	if len(title) == 0 {
		title = []string{styles.FaintText.Render("(untitled)")}
	} else {
		for i, line := range title {
			title[i] = styles.Text.Bold(true).Render(line)
		}
	}
	for len(title) < titleLines {
		title = append(title, "")
	}
	lines = append(lines, title...)

	if item.ImageURL != "" {
		lines = append(lines, styles.InfoText.Render(truncateMiddle(item.ImageURL, cardTextWidth)))
	} else {
		lines = append(lines, styles.FaintText.Render("no image"))
	}
	lines = append(lines, "")

	if m.liked(item) {
		lines = append(lines, styles.UnlikeButton.Render(unlikeLabel))
	} else {
		lines = append(lines, styles.LikeButton.Render(likeLabel))
	}

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(cardTextWidth + 2).Render(strings.Join(lines, "\n"))
}

// renderGrid lays the cards out in rows that fit height, scrolled so the
// selected card is visible.
func (m Model) renderGrid(items []catalog.Item, height int) string {
	if len(items) == 0 {
		return m.theme.Styles().MutedText.Render("No anime found.")
	}

	cols := m.columns()
	cards := m.renderCards(items)

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	visible := max(1, height/cardHeight)
	first := 0
	if selectedRow := m.selected / cols; selectedRow >= visible {
		first = selectedRow - visible + 1
	}
	last := min(first+visible, len(rows))
	return lipgloss.JoinVertical(lipgloss.Left, rows[first:last]...)
}
