package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle keeps both ends of a long value, which for image URLs are
// the host and the file name.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

// wrapLines word-wraps value into at most maxLines lines of width runes.
// Overflow on the last line is truncated.
func wrapLines(value string, width, maxLines int) []string {
	words := strings.Fields(value)
	if len(words) == 0 || width <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	current := ""
	for i, w := range words {
		if current == "" {
			current = w
			continue
		}
		if len([]rune(current))+1+len([]rune(w)) <= width {
			current += " " + w
			continue
		}
		if len(lines) == maxLines-1 {
			rest := current + " " + strings.Join(words[i:], " ")
			return append(lines, truncate(rest, width))
		}
		lines = append(lines, truncate(current, width))
		current = w
	}
	return append(lines, truncate(current, width))
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
