package repository

import (
	"context"
	"database/sql"
)

// SubscriptionRepository reads subscriber contacts. Subscriptions are
// owned and mutated by the account service; this pipeline only resolves
// who to notify for a topic.
type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) SubscribersForTopic(ctx context.Context, industry string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.email
		FROM subscriptions sub
		INNER JOIN users u ON sub.user_id = u.user_id
		WHERE sub.industry = $1
	`, industry)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}
