package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"newschat/internal/chat"
	"newschat/internal/model"
)

type ChatService interface {
	CreateSession() chat.SessionView
	Session(id string) (chat.SessionView, error)
	Ask(id, text string) (model.ChatTurn, error)
	Summarize(id string, index int) (model.ChatTurn, error)
	FactCheck(id, claim string) (model.ChatTurn, error)
	Topic(id, topic string) (model.ChatTurn, error)
}

type ChatHandler struct {
	service ChatService
}

func NewChatHandler(service ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	view := h.service.CreateSession()
	c.JSON(http.StatusCreated, toSessionResponse(view))
}

func (h *ChatHandler) GetSession(c *gin.Context) {
	view, err := h.service.Session(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(view))
}

type messageRequest struct {
	Message string `json:"message"`
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	turn, err := h.service.Ask(c.Param("id"), req.Message)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTurnResponse(turn))
}

type summarizeRequest struct {
	ArticleIndex int `json:"article_index"`
}

func (h *ChatHandler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	turn, err := h.service.Summarize(c.Param("id"), req.ArticleIndex)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTurnResponse(turn))
}

type factCheckRequest struct {
	Claim string `json:"claim"`
}

func (h *ChatHandler) FactCheck(c *gin.Context) {
	var req factCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	turn, err := h.service.FactCheck(c.Param("id"), req.Claim)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTurnResponse(turn))
}

type topicRequest struct {
	Topic string `json:"topic"`
}

func (h *ChatHandler) Topic(c *gin.Context) {
	var req topicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	turn, err := h.service.Topic(c.Param("id"), req.Topic)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTurnResponse(turn))
}

func (h *ChatHandler) GetTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": chat.TrendingTopics})
}

func (h *ChatHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
	case errors.Is(err, chat.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, chat.ErrSessionBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "Assistant is busy"})
	case errors.Is(err, chat.ErrNoArticle):
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
	case errors.Is(err, chat.ErrUnknownTopic):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown topic"})
	default:
		slog.Error("chat request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
