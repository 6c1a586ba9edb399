package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"newschat/internal/model"
)

const (
	snapshotKey = "newschat:headlines:latest"
	snapshotTTL = 15 * time.Minute
)

// Cache shares the latest headline snapshot between replicas through Redis.
// Headlines are transient by design, so the snapshot carries a TTL and a
// cold cache just means the first refresh does the work.
type Cache struct {
	client *redis.Client
}

func NewCache(redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{client: client}, nil
}

func (c *Cache) Save(articles []model.Article) error {
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("snapshot marshal: %w", err)
	}

	return c.client.Set(context.Background(), snapshotKey, data, snapshotTTL).Err()
}

// Load returns nil with no error when no snapshot is stored.
func (c *Cache) Load() ([]model.Article, error) {
	data, err := c.client.Get(context.Background(), snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}

	var articles []model.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("snapshot unmarshal: %w", err)
	}

	return articles, nil
}

func (c *Cache) Close() {
	c.client.Close()
}
