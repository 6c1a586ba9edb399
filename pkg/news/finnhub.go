package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnHubClient is an optional secondary source pulling general market news.
// Finnhub gives no article body, so the content hint stays zero.
type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(limit int) ([]Article, error) {
	res, _, err := c.client.MarketNews(context.Background()).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var articles []Article

	for _, item := range res {
		if limit > 0 && len(articles) >= limit {
			break
		}

		a := Article{SourceName: c.Name()}

		if item.Headline != nil {
			a.Title = *item.Headline
		}

		if item.Summary != nil {
			a.Description = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Image != nil {
			a.ImageURL = *item.Image
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		if item.Source != nil {
			a.SourceName = *item.Source
		}

		articles = append(articles, a)
	}

	return articles, nil
}
