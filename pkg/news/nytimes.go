package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const nytAPIURL = "https://api.nytimes.com/svc/search/v2/articlesearch.json"

// Article Search timestamps carry a numeric zone offset.
const nytTimeLayout = "2006-01-02T15:04:05-0700"

type NYTimesClient struct {
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewNYTimesClient(apiKey string) *NYTimesClient {
	return &NYTimesClient{
		apiKey:     apiKey,
		limit:      5,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NYTimesClient) Name() string {
	return "The New York Times"
}

func (c *NYTimesClient) Fetch(ctx context.Context, topic string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("api-key", c.apiKey)
	params.Set("sort", "newest")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nytAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nytimes request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nytimes fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nytimes status: %s", resp.Status)
	}

	var raw nytResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("nytimes decode: %w", err)
	}

	docs := raw.Response.Docs
	if len(docs) > c.limit {
		docs = docs[:c.limit]
	}

	articles := make([]Article, 0, len(docs))
	for _, doc := range docs {
		if doc.WebURL == "" {
			continue
		}

		publishedAt, err := time.Parse(nytTimeLayout, doc.PubDate)
		if err != nil {
			publishedAt = time.Time{}
		}

		content := doc.Abstract
		if content == "" {
			content = doc.LeadParagraph
		}

		articles = append(articles, Article{
			Title:       doc.Headline.Main,
			Source:      c.Name(),
			PublishedAt: publishedAt,
			Content:     content,
			URL:         doc.WebURL,
			Topic:       topic,
		})
	}

	return articles, nil
}

type nytResponse struct {
	Response nytResponseBody `json:"response"`
}

type nytResponseBody struct {
	Docs []nytDoc `json:"docs"`
}

type nytDoc struct {
	Headline      nytHeadline `json:"headline"`
	PubDate       string      `json:"pub_date"`
	Abstract      string      `json:"abstract"`
	LeadParagraph string      `json:"lead_paragraph"`
	WebURL        string      `json:"web_url"`
}

type nytHeadline struct {
	Main string `json:"main"`
}
