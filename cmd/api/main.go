package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"newschat/internal/chat"
	"newschat/internal/config"
	"newschat/internal/handler"
	"newschat/internal/headlines"
	"newschat/pkg/llm"
	"newschat/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	var sources []news.Client
	if cfg.NewsAPIKey != "" {
		sources = append(sources, news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsCountry))
	}
	if cfg.FinnhubAPIKey != "" {
		sources = append(sources, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if len(cfg.RSSFeeds) > 0 {
		sources = append(sources, news.NewRSSClient(cfg.RSSFeeds))
	}

	if len(sources) == 0 {
		log.Fatal("no headline sources configured")
	}

	var cache *headlines.Cache
	if cfg.RedisURL != "" {
		cache, err = headlines.NewCache(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer cache.Close()
	}

	store := headlines.NewStore(sources, cache)
	store.Seed()
	store.Refresh()

	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "anthropic":
		llmClient = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		llmClient = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	chatService := chat.NewService(chat.NewStore(), llmClient, store, cfg.ChatVariant == "enhanced")

	headlineHandler := handler.NewHeadlineHandler(store)
	chatHandler := handler.NewChatHandler(chatService)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/headlines", headlineHandler.GetHeadlines)
	r.POST("/headlines/refresh", headlineHandler.RefreshHeadlines)
	r.GET("/topics", chatHandler.GetTopics)
	r.POST("/chat/sessions", chatHandler.CreateSession)
	r.GET("/chat/sessions/:id", chatHandler.GetSession)
	r.POST("/chat/sessions/:id/messages", chatHandler.PostMessage)
	r.POST("/chat/sessions/:id/summarize", chatHandler.Summarize)
	r.POST("/chat/sessions/:id/factcheck", chatHandler.FactCheck)
	r.POST("/chat/sessions/:id/topics", chatHandler.Topic)
	r.GET("/health", headlineHandler.GetHealth)

	err = r.Run(cfg.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
