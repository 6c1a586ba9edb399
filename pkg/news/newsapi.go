package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NewsAPIClient fetches top headlines from newsapi.org. This is the primary
// headline source; the country code selects the edition.
type NewsAPIClient struct {
	apiKey     string
	country    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey, country string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		country:    country,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(limit int) ([]Article, error) {
	url := fmt.Sprintf(
		"https://newsapi.org/v2/top-headlines?country=%s&pageSize=%d&apiKey=%s",
		c.country, limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:         item.Title,
			Description:   item.Description,
			SourceName:    item.Source.Name,
			URL:           item.URL,
			ImageURL:      item.URLToImage,
			PublishedAt:   publishedAt,
			ContentLength: len(item.Content),
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Status   string        `json:"status"`
	Articles []newsAPIItem `json:"articles"`
}

type newsAPIItem struct {
	Source      newsAPISource `json:"source"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
	Content     string        `json:"content"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
