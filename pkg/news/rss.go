package news

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// RSSClient reads headlines from a set of RSS/Atom feeds. Feeds carry no
// image or body length for most publishers, so those fields degrade to their
// fallbacks at presentation time.
type RSSClient struct {
	feedURLs []string
	parser   *gofeed.Parser
}

func NewRSSClient(feedURLs []string) *RSSClient {
	return &RSSClient{
		feedURLs: feedURLs,
		parser:   gofeed.NewParser(),
	}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) Fetch(limit int) ([]Article, error) {
	var articles []Article
	var lastErr error

	for _, url := range c.feedURLs {
		feed, err := c.parser.ParseURL(url)
		if err != nil {
			lastErr = fmt.Errorf("rss fetch %s: %w", url, err)
			continue
		}

		for _, item := range feed.Items {
			if limit > 0 && len(articles) >= limit {
				break
			}

			a := Article{
				Title:       item.Title,
				Description: item.Description,
				URL:         item.Link,
				SourceName:  feed.Title,
			}

			if item.PublishedParsed != nil {
				a.PublishedAt = *item.PublishedParsed
			}

			if item.Image != nil {
				a.ImageURL = item.Image.URL
			}

			if item.Content != "" {
				a.ContentLength = len(item.Content)
			}

			articles = append(articles, a)
		}
	}

	if len(articles) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return articles, nil
}
