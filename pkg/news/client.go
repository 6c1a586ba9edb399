package news

import "time"

type Article struct {
	Title         string
	Description   string
	SourceName    string
	URL           string
	ImageURL      string
	PublishedAt   time.Time
	ContentLength int
}

type Client interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}
