package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sentinews/internal/model"

	"github.com/gin-gonic/gin"
)

type NewsStore interface {
	Recent(ctx context.Context, limit int) ([]model.ScoredArticle, error)
	RecentByTopic(ctx context.Context, industry string, limit int) ([]model.ScoredArticle, error)
	SentimentSummary(ctx context.Context) ([]model.SentimentSummary, error)
	CountArticles(ctx context.Context) (int, error)
}

// Trigger runs one synchronous ingestion cycle for a topic.
type Trigger interface {
	Run(ctx context.Context, topic string) (model.CycleReport, error)
}

type NewsHandler struct {
	repository   NewsStore
	trigger      Trigger
	defaultTopic string
}

func NewNewsHandler(repository NewsStore, trigger Trigger, defaultTopic string) *NewsHandler {
	return &NewsHandler{repository: repository, trigger: trigger, defaultTopic: defaultTopic}
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	topic := c.Query("q")
	if topic == "" {
		topic = h.defaultTopic
	}

	report, err := h.trigger.Run(c.Request.Context(), topic)
	if err != nil {
		slog.Error("error running ingestion cycle", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating news articles"})
		return
	}

	c.JSON(http.StatusOK, UpdateResponse{
		Message:    "News articles updated successfully from multiple sources.",
		Topic:      report.Topic,
		Unique:     report.Unique,
		Saved:      report.Inserted(),
		Duplicated: report.Duplicates(),
		Errors:     report.Failed(),
	})
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	limit := getQueryLimit(c)

	articles, err := h.repository.Recent(c.Request.Context(), limit)
	if err != nil {
		slog.Error("error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

func (h *NewsHandler) GetIndustryNews(c *gin.Context) {
	industry := c.Param("industry")

	articles, err := h.repository.RecentByTopic(c.Request.Context(), industry, getQueryLimit(c))
	if err != nil {
		slog.Error("error fetching industry news", "industry", industry, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

func (h *NewsHandler) GetSentiments(c *gin.Context) {
	summaries, err := h.repository.SentimentSummary(c.Request.Context())
	if err != nil {
		slog.Error("error fetching sentiments", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching sentiments"})
		return
	}

	res := make([]SentimentSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		res = append(res, SentimentSummaryResponse{
			Industry:    s.Industry,
			PublishedAt: s.Day.Format("2006-01-02"),
			Score:       s.Score,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.CountArticles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toArticleResponses(articles []model.ScoredArticle) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, ArticleResponse{
			ID:          a.ID,
			Title:       a.Title,
			Source:      a.Source,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			Content:     a.Content,
			URL:         a.URL,
			Industry:    a.Industry,
			Sentiment:   a.Sentiment,
			Score:       a.Score,
		})
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
