package repository

import (
	"context"
	"database/sql"
	"sentinews/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Persist inserts the article keyed by URL. The store's uniqueness
// constraint is the serialization point: on a duplicate URL the insert
// is a no-op and the existing id is looked up instead. Returns whether
// a new row was created.
func (r *ArticleRepository) Persist(ctx context.Context, article *model.Article) (bool, error) {
	content := sql.NullString{String: article.Content, Valid: article.Content != ""}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO news(title, source, published_at, content, url, industry)
		VALUES($1, $2, $3, $4, $5, $6)
		ON CONFLICT (url) DO NOTHING
		RETURNING news_id
	`, article.Title, article.Source, article.PublishedAt, content, article.URL, article.Industry).Scan(&id)

	if err == sql.ErrNoRows {
		err = r.db.QueryRowContext(ctx, `
			SELECT news_id FROM news WHERE url = $1
		`, article.URL).Scan(&id)
		if err != nil {
			return false, err
		}

		article.ID = id
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

// SaveSentiment stores the single score row for a freshly inserted
// article. Callers only invoke it on first insert, so a score is never
// recomputed or duplicated for a known URL.
func (r *ArticleRepository) SaveSentiment(ctx context.Context, newsID int64, sentiment string, score float64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sentiment_scores(news_id, sentiment, score)
		VALUES($1, $2, $3)
	`, newsID, sentiment, score)
	return err
}

func (r *ArticleRepository) RecentByTopic(ctx context.Context, industry string, limit int) ([]model.ScoredArticle, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.news_id, n.title, n.source, n.published_at, n.content, n.url, n.industry, n.created_at,
			s.sentiment, s.score
		FROM news n
		INNER JOIN sentiment_scores s ON n.news_id = s.news_id
		WHERE n.industry = $1
		ORDER BY n.published_at DESC
		LIMIT $2
	`, industry, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScoredArticles(rows)
}

func (r *ArticleRepository) Recent(ctx context.Context, limit int) ([]model.ScoredArticle, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.news_id, n.title, n.source, n.published_at, n.content, n.url, n.industry, n.created_at,
			s.sentiment, s.score
		FROM news n
		INNER JOIN sentiment_scores s ON n.news_id = s.news_id
		ORDER BY n.created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanScoredArticles(rows)
}

func (r *ArticleRepository) SentimentSummary(ctx context.Context) ([]model.SentimentSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT n.industry, DATE(n.published_at) AS day, AVG(s.score) AS score
		FROM sentiment_scores s
		INNER JOIN news n ON s.news_id = n.news_id
		GROUP BY n.industry, DATE(n.published_at)
		ORDER BY n.industry, day
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.SentimentSummary
	for rows.Next() {
		var s model.SentimentSummary
		if err := rows.Scan(&s.Industry, &s.Day, &s.Score); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM news
	`).Scan(&total)
	return total, err
}

func scanScoredArticles(rows *sql.Rows) ([]model.ScoredArticle, error) {
	var articles []model.ScoredArticle
	for rows.Next() {
		var a model.ScoredArticle
		var content sql.NullString
		err := rows.Scan(&a.ID, &a.Title, &a.Source, &a.PublishedAt, &content, &a.URL, &a.Industry, &a.CreatedAt,
			&a.Sentiment, &a.Score)
		if err != nil {
			return nil, err
		}
		a.Content = content.String
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}
