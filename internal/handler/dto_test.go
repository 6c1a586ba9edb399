package handler

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"newschat/internal/model"
)

func TestReadingMinutes(t *testing.T) {
	assert.Equal(t, 5, readingMinutes(4321))
	assert.Equal(t, 1, readingMinutes(1))
	assert.Equal(t, 1, readingMinutes(1000))
	assert.Equal(t, 2, readingMinutes(1001))
	assert.Equal(t, 5, readingMinutes(0)) // no content hint
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))

	long := strings.Repeat("a", 100)
	got := truncate(long, 80)
	assert.Equal(t, 83, len(got))
	assert.Equal(t, true, strings.HasSuffix(got, "..."))

	// exact fit is left alone
	exact := strings.Repeat("b", 80)
	assert.Equal(t, exact, truncate(exact, 80))
}

func TestToCardResponse(t *testing.T) {
	card := toCardResponse(model.Article{
		Title:         "Parliament Passes Budget",
		Description:   "The annual budget passed after a long debate.",
		SourceName:    "BBC News",
		URL:           "https://example.com/budget",
		ImageURL:      "https://example.com/budget.jpg",
		PublishedAt:   time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC),
		ContentLength: 4321,
	})

	assert.Equal(t, "Parliament Passes Budget", card.Title)
	assert.Equal(t, "BBC News", card.Source)
	assert.Equal(t, "Aug 29, 2026", card.PublishedAt)
	assert.Equal(t, 5, card.ReadingMinutes)
	assert.Equal(t, "https://example.com/budget.jpg", card.ImageURL)
}

func TestToCardResponseFallbacks(t *testing.T) {
	card := toCardResponse(model.Article{
		Title: "Untitled Source Story",
		URL:   "https://example.com/story",
	})

	assert.Equal(t, defaultSourceName, card.Source)
	assert.Equal(t, placeholderImage, card.ImageURL)
	assert.Equal(t, defaultReadingMinutes, card.ReadingMinutes)
	assert.Equal(t, "", card.PublishedAt)
}
