package handler

type ArticleResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	PublishedAt string  `json:"published_at"`
	Content     string  `json:"content,omitempty"`
	URL         string  `json:"url"`
	Industry    string  `json:"industry"`
	Sentiment   string  `json:"sentiment"`
	Score       float64 `json:"score"`
}

type SentimentSummaryResponse struct {
	Industry    string  `json:"industry"`
	PublishedAt string  `json:"published_at"`
	Score       float64 `json:"score"`
}

type UpdateResponse struct {
	Message    string `json:"message"`
	Topic      string `json:"topic"`
	Unique     int    `json:"unique"`
	Saved      int    `json:"saved"`
	Duplicated int    `json:"duplicated"`
	Errors     int    `json:"errors"`
}
