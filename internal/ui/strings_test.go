package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Trigun", truncate("  Trigun ", 10))
	assert.Equal(t, "Cowboy ...", truncate("Cowboy Bebop", 10))
	assert.Equal(t, "Cow", truncate("Cowboy", 3))
	assert.Equal(t, "Cowboy", truncate("Cowboy", 0))
}

func TestTruncateMiddle(t *testing.T) {
	assert.Equal(t, "short.jpg", truncateMiddle("short.jpg", 20))
	got := truncateMiddle("https://cdn.example/images/anime/1/12345.jpg", 15)
	assert.Equal(t, "https:/…345.jpg", got)
	assert.Len(t, []rune(got), 15)
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		width    int
		maxLines int
		want     []string
	}{
		{name: "empty", value: "  ", width: 10, maxLines: 2, want: nil},
		{name: "fits", value: "Trigun", width: 10, maxLines: 2, want: []string{"Trigun"}},
		{name: "two lines", value: "Cowboy Bebop Movie", width: 12, maxLines: 2, want: []string{"Cowboy Bebop", "Movie"}},
		{name: "overflow truncated", value: "Cowboy Bebop: The Movie", width: 10, maxLines: 2, want: []string{"Cowboy", "Bebop: ..."}},
		{name: "long word", value: "Supercalifragilistic", width: 8, maxLines: 2, want: []string{"Super..."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapLines(tt.value, tt.width, tt.maxLines))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
}
