package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNYTimesFetchAbstractFallback(t *testing.T) {
	payload := map[string]interface{}{
		"response": map[string]interface{}{
			"docs": []map[string]interface{}{
				{
					"headline":       map[string]interface{}{"main": "Senate Passes Budget Bill"},
					"pub_date":       "2026-08-28T14:05:00+0000",
					"abstract":       "",
					"lead_paragraph": "The Senate approved the budget on Thursday.",
					"web_url":        "https://example.com/budget",
				},
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NYTimesClient{
		apiKey:     "test-key",
		limit:      5,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "politics")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Senate Passes Budget Bill", a.Title)
	assert.Equal(t, "The New York Times", a.Source)
	assert.Equal(t, "The Senate approved the budget on Thursday.", a.Content)
	assert.Equal(t, "https://example.com/budget", a.URL)
	assert.Equal(t, 2026, a.PublishedAt.Year())
}

func TestNYTimesFetchLimitsDocs(t *testing.T) {
	var docs []map[string]interface{}
	for i := 0; i < 10; i++ {
		docs = append(docs, map[string]interface{}{
			"headline": map[string]interface{}{"main": "Item"},
			"pub_date": "2026-08-28T14:05:00+0000",
			"abstract": "Short summary.",
			"web_url":  "https://example.com/item-" + string(rune('a'+i)),
		})
	}
	payload := map[string]interface{}{
		"response": map[string]interface{}{"docs": docs},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &NYTimesClient{
		apiKey:     "test-key",
		limit:      5,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.Fetch(context.Background(), "politics")

	assert.Equal(t, nil, err)
	assert.Equal(t, 5, len(articles))
}
