package model

import "time"

type Article struct {
	ID          int64
	Title       string
	Source      string
	PublishedAt time.Time
	Content     string
	URL         string
	Industry    string
	CreatedAt   time.Time
}

type SentimentScore struct {
	NewsID    int64
	Sentiment string
	Score     float64
}

// ScoredArticle is an article joined with its stored sentiment, as read
// back for digests and feed endpoints.
type ScoredArticle struct {
	Article
	Sentiment string
	Score     float64
}

type SentimentSummary struct {
	Industry string
	Day      time.Time
	Score    float64
}

// ArticleOutcome records what happened to a single article during a
// cycle, so a failed unit keeps its identity in the cycle report.
type ArticleOutcome struct {
	URL      string
	Inserted bool
	Err      error
}

type CycleReport struct {
	Topic    string
	Unique   int
	Outcomes []ArticleOutcome
}

func (r CycleReport) Inserted() int {
	var n int
	for _, o := range r.Outcomes {
		if o.Inserted && o.Err == nil {
			n++
		}
	}
	return n
}

func (r CycleReport) Duplicates() int {
	var n int
	for _, o := range r.Outcomes {
		if !o.Inserted && o.Err == nil {
			n++
		}
	}
	return n
}

func (r CycleReport) Failed() int {
	var n int
	for _, o := range r.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
