package feedback

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"stackguides/internal/db"
)

// Action is a reader's feedback choice for an article.
type Action string

const (
	ActionLike    Action = "like"
	ActionDislike Action = "dislike"
)

// Valid reports whether a is one of the two recognized actions.
func (a Action) Valid() bool {
	return a == ActionLike || a == ActionDislike
}

// Counts is the aggregate feedback for one article. The store is the
// authoritative owner of these numbers.
type Counts struct {
	ArticleID string `json:"article_id"`
	Likes     int    `json:"likes"`
	Dislikes  int    `json:"dislikes"`
}

// Store provides the article feedback aggregates.
type Store struct {
	db *db.DB
}

// NewStore creates a new feedback store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Stats returns the aggregate counts for an article. Articles with no
// recorded feedback report zero counts rather than an error.
func (s *Store) Stats(ctx context.Context, articleID string) (Counts, error) {
	c := Counts{ArticleID: articleID}
	err := s.db.QueryRowContext(ctx,
		`SELECT likes, dislikes FROM article_counters WHERE article_id = ?`, articleID,
	).Scan(&c.Likes, &c.Dislikes)
	if err == sql.ErrNoRows {
		return c, nil
	}
	if err != nil {
		return Counts{}, fmt.Errorf("reading counters for %s: %w", articleID, err)
	}
	return c, nil
}

// Apply records one vote for an article and returns the updated counts.
func (s *Store) Apply(ctx context.Context, articleID string, action Action) (Counts, error) {
	if !action.Valid() {
		return Counts{}, fmt.Errorf("invalid action %q", action)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Counts{}, fmt.Errorf("beginning vote transaction: %w", err)
	}
	defer tx.Rollback()

	likeInc, dislikeInc := 0, 0
	if action == ActionLike {
		likeInc = 1
	} else {
		dislikeInc = 1
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO article_counters (article_id, likes, dislikes)
		 VALUES (?, ?, ?)
		 ON CONFLICT(article_id) DO UPDATE SET
		   likes = likes + excluded.likes,
		   dislikes = dislikes + excluded.dislikes,
		   updated_at = datetime('now')`,
		articleID, likeInc, dislikeInc,
	)
	if err != nil {
		return Counts{}, fmt.Errorf("updating counters for %s: %w", articleID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO vote_events (id, article_id, action) VALUES (?, ?, ?)`,
		uuid.NewString(), articleID, string(action),
	)
	if err != nil {
		return Counts{}, fmt.Errorf("recording vote event for %s: %w", articleID, err)
	}

	c := Counts{ArticleID: articleID}
	err = tx.QueryRowContext(ctx,
		`SELECT likes, dislikes FROM article_counters WHERE article_id = ?`, articleID,
	).Scan(&c.Likes, &c.Dislikes)
	if err != nil {
		return Counts{}, fmt.Errorf("rereading counters for %s: %w", articleID, err)
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, fmt.Errorf("committing vote for %s: %w", articleID, err)
	}
	return c, nil
}

// EventCount returns the number of recorded vote events for an article.
func (s *Store) EventCount(ctx context.Context, articleID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM vote_events WHERE article_id = ?`, articleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting vote events for %s: %w", articleID, err)
	}
	return n, nil
}
