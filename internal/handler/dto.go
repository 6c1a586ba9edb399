package handler

import (
	"math"

	"newschat/internal/chat"
	"newschat/internal/model"
)

// Card display constants mirror the original news card: fixed truncation
// lengths, a placeholder image, a default reading time when the source gave
// no content hint.
const (
	titleDisplayLimit       = 80
	descriptionDisplayLimit = 120
	placeholderImage        = "/api/placeholder/400/320"
	defaultSourceName       = "News"
	defaultReadingMinutes   = 5
	cardDateLayout          = "Jan 2, 2006"
)

type CardResponse struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Source         string `json:"source"`
	URL            string `json:"url"`
	ImageURL       string `json:"image_url"`
	PublishedAt    string `json:"published_at"`
	ReadingMinutes int    `json:"reading_minutes"`
}

type HeadlinesResponse struct {
	Articles []CardResponse `json:"articles"`
	Total    int            `json:"total"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
}

func toCardResponse(a model.Article) CardResponse {
	source := a.SourceName
	if source == "" {
		source = defaultSourceName
	}

	image := a.ImageURL
	if image == "" {
		image = placeholderImage
	}

	published := ""
	if !a.PublishedAt.IsZero() {
		published = a.PublishedAt.Format(cardDateLayout)
	}

	return CardResponse{
		Title:          truncate(a.Title, titleDisplayLimit),
		Description:    truncate(a.Description, descriptionDisplayLimit),
		Source:         source,
		URL:            a.URL,
		ImageURL:       image,
		PublishedAt:    published,
		ReadingMinutes: readingMinutes(a.ContentLength),
	}
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

func readingMinutes(contentLength int) int {
	if contentLength <= 0 {
		return defaultReadingMinutes
	}
	return int(math.Ceil(float64(contentLength) / 1000))
}

type TurnResponse struct {
	Role    string   `json:"role"`
	Content string   `json:"content"`
	Actions []string `json:"actions,omitempty"`
}

type SessionResponse struct {
	ID    string         `json:"id"`
	Turns []TurnResponse `json:"turns"`
	Busy  bool           `json:"busy"`
}

func toTurnResponse(t model.ChatTurn) TurnResponse {
	return TurnResponse{Role: t.Role, Content: t.Content, Actions: t.Actions}
}

func toSessionResponse(v chat.SessionView) SessionResponse {
	turns := make([]TurnResponse, len(v.Turns))
	for i, t := range v.Turns {
		turns[i] = toTurnResponse(t)
	}
	return SessionResponse{ID: v.ID, Turns: turns, Busy: v.Busy}
}
