package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sentinews/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	recent    []model.ScoredArticle
	byTopic   []model.ScoredArticle
	summaries []model.SentimentSummary
	total     int
	err       error
}

func (f *fakeStore) Recent(ctx context.Context, limit int) ([]model.ScoredArticle, error) {
	return f.recent, f.err
}

func (f *fakeStore) RecentByTopic(ctx context.Context, industry string, limit int) ([]model.ScoredArticle, error) {
	return f.byTopic, f.err
}

func (f *fakeStore) SentimentSummary(ctx context.Context) ([]model.SentimentSummary, error) {
	return f.summaries, f.err
}

func (f *fakeStore) CountArticles(ctx context.Context) (int, error) {
	return f.total, f.err
}

type fakeTrigger struct {
	gotTopic string
	report   model.CycleReport
	err      error
}

func (f *fakeTrigger) Run(ctx context.Context, topic string) (model.CycleReport, error) {
	f.gotTopic = topic
	f.report.Topic = topic
	return f.report, f.err
}

func newTestRouter(store NewsStore, trigger Trigger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(store, trigger, "business")
	r.POST("/news/update", h.UpdateNews)
	r.GET("/news", h.GetNews)
	r.GET("/news/:industry", h.GetIndustryNews)
	r.GET("/sentiments", h.GetSentiments)
	r.GET("/health", h.GetHealth)
	return r
}

func TestUpdateNewsUsesQueryTopic(t *testing.T) {
	trigger := &fakeTrigger{report: model.CycleReport{
		Outcomes: []model.ArticleOutcome{
			{URL: "u1", Inserted: true},
			{URL: "u2", Inserted: false},
		},
	}}
	r := newTestRouter(&fakeStore{}, trigger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/news/update?q=technology", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "technology", trigger.gotTopic)

	var res UpdateResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "technology", res.Topic)
	assert.Equal(t, 1, res.Saved)
	assert.Equal(t, 1, res.Duplicated)
}

func TestUpdateNewsDefaultTopic(t *testing.T) {
	trigger := &fakeTrigger{}
	r := newTestRouter(&fakeStore{}, trigger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/news/update", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "business", trigger.gotTopic)
}

func TestUpdateNewsCycleError(t *testing.T) {
	trigger := &fakeTrigger{err: errors.New("cycle cancelled")}
	r := newTestRouter(&fakeStore{}, trigger)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/news/update", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetNewsReturnsArticles(t *testing.T) {
	store := &fakeStore{
		recent: []model.ScoredArticle{
			{
				Article: model.Article{
					ID: 1, Title: "Headline", Source: "TechWire",
					PublishedAt: time.Now(), URL: "https://example.com/1", Industry: "technology",
				},
				Sentiment: "positive",
				Score:     0.6,
			},
		},
	}
	r := newTestRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news?limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []ArticleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "Headline", res[0].Title)
	assert.Equal(t, "positive", res[0].Sentiment)
}

func TestGetNewsDatabaseError(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("db gone")}, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/news", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetSentiments(t *testing.T) {
	store := &fakeStore{
		summaries: []model.SentimentSummary{
			{Industry: "technology", Day: time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), Score: 0.25},
		},
	}
	r := newTestRouter(store, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sentiments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []SentimentSummaryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "technology", res[0].Industry)
	assert.Equal(t, "2026-08-30", res[0].PublishedAt)
}

func TestGetHealthUnhealthy(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("dead")}, &fakeTrigger{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
