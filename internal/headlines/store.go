package headlines

import (
	"log/slog"
	"sort"
	"sync"

	"newschat/internal/model"
	"newschat/pkg/news"
)

// ErrorBanner is the user-facing message shown when a refresh fails. The
// underlying cause is logged, never sent to the client.
const ErrorBanner = "Failed to load news. Please try again later."

const fetchLimit = 50

// Store holds the last-fetched article list. The slice is replaced in a
// single assignment under the lock, so readers observe either the old or the
// new list in full, never a partial one. A failed refresh leaves the list
// untouched: previous headlines survive a manual refresh, and an initial-load
// failure leaves it empty.
type Store struct {
	mu       sync.RWMutex
	articles []model.Article
	errMsg   string
	loading  bool

	sources []news.Client
	cache   *Cache // nil when Redis is not configured
}

func NewStore(sources []news.Client, cache *Cache) *Store {
	return &Store{sources: sources, cache: cache}
}

// Seed populates the store from the shared Redis snapshot, if one exists.
// Called once at startup before the first refresh; a miss is not an error.
func (s *Store) Seed() {
	if s.cache == nil {
		return
	}

	articles, err := s.cache.Load()
	if err != nil {
		slog.Error("error loading headline snapshot", "error", err)
		return
	}

	if len(articles) == 0 {
		return
	}

	s.mu.Lock()
	s.articles = articles
	s.mu.Unlock()

	slog.Info("seeded headlines from snapshot", "count", len(articles))
}

// Refresh fetches from every configured source and replaces the held list.
// No retries: a failed attempt is terminal until the next explicit refresh.
func (s *Store) Refresh() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var fetched []model.Article
	ok := false

	for _, source := range s.sources {
		articles, err := source.Fetch(fetchLimit)
		if err != nil {
			slog.Error("error fetching headlines", "source", source.Name(), "error", err)
			continue
		}

		ok = true
		for _, a := range articles {
			fetched = append(fetched, model.Article(a))
		}
	}

	sort.SliceStable(fetched, func(i, j int) bool {
		return fetched[i].PublishedAt.After(fetched[j].PublishedAt)
	})

	s.mu.Lock()
	s.loading = false
	if ok {
		s.articles = fetched
		s.errMsg = ""
	} else {
		s.errMsg = ErrorBanner
	}
	s.mu.Unlock()

	if ok && s.cache != nil {
		if err := s.cache.Save(fetched); err != nil {
			slog.Error("error saving headline snapshot", "error", err)
		}
	}
}

// Snapshot returns the current list, the error banner (empty when clear) and
// the loading flag.
func (s *Store) Snapshot() ([]model.Article, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles, s.errMsg, s.loading
}

// Titles returns the headline titles in display order, used as the
// assistant's context.
func (s *Store) Titles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	titles := make([]string, len(s.articles))
	for i, a := range s.articles {
		titles[i] = a.Title
	}
	return titles
}
