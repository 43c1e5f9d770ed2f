package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestGuardianFetch(t *testing.T) {
	payload := map[string]interface{}{
		"response": map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"webTitle":           "Markets Rally After Rate Decision",
					"webPublicationDate": "2026-08-29T18:30:00Z",
					"webUrl":             "https://example.com/markets-rally",
					"fields": map[string]interface{}{
						"trailText": "Stocks climbed across Europe on Friday.",
					},
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &GuardianClient{
		apiKey:     "test-key",
		pageSize:   5,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "finance")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Markets Rally After Rate Decision", a.Title)
	assert.Equal(t, "The Guardian", a.Source)
	assert.Equal(t, "Stocks climbed across Europe on Friday.", a.Content)
	assert.Equal(t, "https://example.com/markets-rally", a.URL)
	assert.Equal(t, "finance", a.Topic)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)
}

func TestGuardianFetchEmptyTrailText(t *testing.T) {
	payload := map[string]interface{}{
		"response": map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"webTitle":           "Minimal Item",
					"webPublicationDate": "2026-08-29T08:00:00Z",
					"webUrl":             "https://example.com/minimal",
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &GuardianClient{
		apiKey:     "test-key",
		pageSize:   5,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "finance")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "", articles[0].Content)
}
