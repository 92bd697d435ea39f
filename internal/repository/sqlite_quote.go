package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
)

// SQLiteFavoriteQuoteRepo implements FavoriteQuoteRepo using a SQLite database.
type SQLiteFavoriteQuoteRepo struct {
	db db.DBTX
}

// NewSQLiteFavoriteQuoteRepo creates a new SQLiteFavoriteQuoteRepo.
func NewSQLiteFavoriteQuoteRepo(conn db.DBTX) *SQLiteFavoriteQuoteRepo {
	return &SQLiteFavoriteQuoteRepo{db: conn}
}

func (r *SQLiteFavoriteQuoteRepo) Create(ctx context.Context, q *domain.FavoriteQuote) error {
	query := `INSERT INTO favorite_quotes (id, user_id, quote, author, tone, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.OwnerID,
		q.Quote,
		q.Author,
		string(q.Tone),
		q.Source,
		timeToString(q.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting favorite quote: %w", err)
	}
	return nil
}

func (r *SQLiteFavoriteQuoteRepo) Exists(ctx context.Context, ownerID, quote, author string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM favorite_quotes
		WHERE user_id = ? AND quote = ? AND author = ?`
	if err := r.db.QueryRowContext(ctx, query, ownerID, quote, author).Scan(&count); err != nil {
		return false, fmt.Errorf("checking favorite quote existence: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteFavoriteQuoteRepo) ListRecent(ctx context.Context, ownerID string, limit int) ([]*domain.FavoriteQuote, error) {
	query := `SELECT id, user_id, quote, author, tone, source, created_at
		FROM favorite_quotes WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing favorite quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*domain.FavoriteQuote
	for rows.Next() {
		var q domain.FavoriteQuote
		var toneStr, createdAtStr string
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.Quote, &q.Author, &toneStr, &q.Source, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning favorite quote: %w", err)
		}
		q.Tone = domain.Tone(toneStr)
		q.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		quotes = append(quotes, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorite quotes: %w", err)
	}
	return quotes, nil
}

func (r *SQLiteFavoriteQuoteRepo) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM favorite_quotes WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("deleting favorite quote: %w", err)
	}
	return nil
}
