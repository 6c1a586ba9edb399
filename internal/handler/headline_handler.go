package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newschat/internal/model"
)

type HeadlineStore interface {
	Snapshot() ([]model.Article, string, bool)
	Refresh()
}

type HeadlineHandler struct {
	store HeadlineStore
}

func NewHeadlineHandler(store HeadlineStore) *HeadlineHandler {
	return &HeadlineHandler{store: store}
}

// GetHeadlines returns the current list. A failed fetch is reported in the
// error banner field, not as an HTTP failure, because the previous list may
// still be on display.
func (h *HeadlineHandler) GetHeadlines(c *gin.Context) {
	articles, errMsg, loading := h.store.Snapshot()

	cards := make([]CardResponse, len(articles))
	for i, a := range articles {
		cards[i] = toCardResponse(a)
	}

	c.JSON(http.StatusOK, HeadlinesResponse{
		Articles: cards,
		Total:    len(cards),
		Loading:  loading,
		Error:    errMsg,
	})
}

// RefreshHeadlines performs one fetch attempt and returns the resulting
// state. No retries happen behind it.
func (h *HeadlineHandler) RefreshHeadlines(c *gin.Context) {
	h.store.Refresh()
	h.GetHeadlines(c)
}

func (h *HeadlineHandler) GetHealth(c *gin.Context) {
	articles, _, _ := h.store.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"headlines": len(articles),
	})
}
