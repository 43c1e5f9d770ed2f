package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const guardianAPIURL = "https://content.guardianapis.com/search"

type GuardianClient struct {
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

func NewGuardianClient(apiKey string) *GuardianClient {
	return &GuardianClient{
		apiKey:     apiKey,
		pageSize:   5,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GuardianClient) Name() string {
	return "The Guardian"
}

func (c *GuardianClient) Fetch(ctx context.Context, topic string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", topic)
	params.Set("api-key", c.apiKey)
	params.Set("order-by", "newest")
	params.Set("page-size", fmt.Sprintf("%d", c.pageSize))
	params.Set("show-fields", "trailText")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, guardianAPIURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("guardian request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("guardian fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("guardian status: %s", resp.Status)
	}

	var raw guardianResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("guardian decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Response.Results))
	for _, item := range raw.Response.Results {
		if item.WebURL == "" {
			continue
		}

		publishedAt, err := time.Parse(time.RFC3339, item.WebPublicationDate)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Title:       item.WebTitle,
			Source:      c.Name(),
			PublishedAt: publishedAt,
			Content:     item.Fields.TrailText,
			URL:         item.WebURL,
			Topic:       topic,
		})
	}

	return articles, nil
}

type guardianResponse struct {
	Response guardianResponseBody `json:"response"`
}

type guardianResponseBody struct {
	Results []guardianResult `json:"results"`
}

type guardianResult struct {
	WebTitle           string         `json:"webTitle"`
	WebPublicationDate string         `json:"webPublicationDate"`
	WebURL             string         `json:"webUrl"`
	Fields             guardianFields `json:"fields"`
}

type guardianFields struct {
	TrailText string `json:"trailText"`
}
