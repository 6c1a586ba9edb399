package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestNewsAPIFetch(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "BBC News"},
				"title":       "Parliament Passes Budget",
				"description": "The annual budget passed after a long debate.",
				"url":         "https://example.com/budget",
				"urlToImage":  "https://example.com/budget.jpg",
				"publishedAt": "2026-08-29T09:30:00Z",
				"content":     "The annual budget passed after a long debate in parliament...",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		country:    "us",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Parliament Passes Budget", a.Title)
	assert.Equal(t, "The annual budget passed after a long debate.", a.Description)
	assert.Equal(t, "BBC News", a.SourceName)
	assert.Equal(t, "https://example.com/budget", a.URL)
	assert.Equal(t, "https://example.com/budget.jpg", a.ImageURL)
	assert.Equal(t, len("The annual budget passed after a long debate in parliament..."), a.ContentLength)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.August, a.PublishedAt.Month())
	assert.Equal(t, 29, a.PublishedAt.Day())
}

func TestNewsAPIFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "bad-key",
		country:    "us",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(1)

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestNewsAPIFetchBadTimestamp(t *testing.T) {
	payload := map[string]interface{}{
		"status": "ok",
		"articles": []map[string]interface{}{
			{
				"source":      map[string]interface{}{"name": "Wire"},
				"title":       "Untimed Story",
				"url":         "https://example.com/untimed",
				"publishedAt": "yesterday",
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NewsAPIClient{
		apiKey:     "test-key",
		country:    "us",
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, time.Time{}, articles[0].PublishedAt)
	assert.Equal(t, 0, articles[0].ContentLength)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
