package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
)

// SQLiteSubtaskRepo implements SubtaskRepo. Ownership checks go through the
// parent item's user_id, so a subtask is only visible to its item's owner.
type SQLiteSubtaskRepo struct {
	db db.DBTX
}

// NewSQLiteSubtaskRepo creates a new SQLiteSubtaskRepo.
func NewSQLiteSubtaskRepo(conn db.DBTX) *SQLiteSubtaskRepo {
	return &SQLiteSubtaskRepo{db: conn}
}

func (r *SQLiteSubtaskRepo) Create(ctx context.Context, s *domain.Subtask) error {
	query := `INSERT INTO subtasks (id, item_id, title, completed, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ItemID,
		s.Title,
		boolToInt(s.Completed),
		timeToString(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting subtask: %w", err)
	}
	return nil
}

func (r *SQLiteSubtaskRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Subtask, error) {
	query := `SELECT s.id, s.item_id, s.title, s.completed, s.created_at
		FROM subtasks s
		JOIN items i ON s.item_id = i.id
		WHERE s.id = ? AND i.user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)

	var s domain.Subtask
	var completedInt int
	var createdAtStr string
	if err := row.Scan(&s.ID, &s.ItemID, &s.Title, &completedInt, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("subtask: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning subtask: %w", err)
	}
	s.Completed = intToBool(completedInt)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &s, nil
}

func (r *SQLiteSubtaskRepo) ListByItem(ctx context.Context, itemID string) ([]*domain.Subtask, error) {
	query := `SELECT id, item_id, title, completed, created_at
		FROM subtasks WHERE item_id = ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("listing subtasks: %w", err)
	}
	defer rows.Close()

	var subtasks []*domain.Subtask
	for rows.Next() {
		var s domain.Subtask
		var completedInt int
		var createdAtStr string
		if err := rows.Scan(&s.ID, &s.ItemID, &s.Title, &completedInt, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning subtask row: %w", err)
		}
		s.Completed = intToBool(completedInt)
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		subtasks = append(subtasks, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subtasks: %w", err)
	}
	return subtasks, nil
}

func (r *SQLiteSubtaskRepo) Update(ctx context.Context, s *domain.Subtask) error {
	query := `UPDATE subtasks SET title = ?, completed = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, s.Title, boolToInt(s.Completed), s.ID)
	if err != nil {
		return fmt.Errorf("updating subtask: %w", err)
	}
	return nil
}

func (r *SQLiteSubtaskRepo) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM subtasks WHERE id = ?
		AND item_id IN (SELECT id FROM items WHERE user_id = ?)`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("deleting subtask: %w", err)
	}
	return nil
}
