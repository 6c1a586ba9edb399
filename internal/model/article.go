package model

import "time"

// Article is one headline as held by the store. The list is replaced
// wholesale on every refresh; individual articles are never mutated.
type Article struct {
	Title         string
	Description   string
	SourceName    string
	URL           string
	ImageURL      string
	PublishedAt   time.Time
	ContentLength int // 0 when the source gave no content hint
}
