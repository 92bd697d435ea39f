package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
)

// itemColumns is the canonical SELECT column list for items.
const itemColumns = `id, user_id, title, description, due_at, priority, recurrence,
		category, pinned, position, completed, completed_at, created_at, updated_at`

// priorityRankExpr orders the priority enum for SQL sorting; the raw TEXT
// values do not sort in severity order.
const priorityRankExpr = `CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END`

// SQLiteItemRepo implements ItemRepo against a db.DBTX, so the same
// implementation serves both plain and transactional access.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, i *domain.Item) error {
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.OwnerID,
		i.Title,
		i.Description,
		nullableTimeToString(i.DueAt),
		string(i.Priority),
		string(i.Recurrence),
		i.Category,
		boolToInt(i.Pinned),
		i.Position,
		boolToInt(i.Completed),
		nullableTimeToString(i.CompletedAt),
		timeToString(i.CreatedAt),
		timeToString(i.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, ownerID, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, ownerID)
	return scanItemRow(row)
}

func (r *SQLiteItemRepo) List(ctx context.Context, ownerID string, f ItemFilter) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE user_id = ?`
	args := []any{ownerID}

	switch f.Status {
	case StatusActive:
		query += ` AND completed = 0`
	case StatusCompleted:
		query += ` AND completed = 1`
	}
	if f.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, f.Priority)
	}
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		query += ` AND (title LIKE ? OR description LIKE ? OR category LIKE ?)`
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	switch f.Sort {
	case SortNewest:
		query += ` ORDER BY created_at DESC`
	case SortOldest:
		query += ` ORDER BY created_at ASC`
	case SortDue:
		query += ` ORDER BY due_at IS NULL, due_at ASC, created_at DESC`
	case SortPriority:
		query += ` ORDER BY ` + priorityRankExpr + ` DESC, created_at DESC`
	default:
		query += ` ORDER BY pinned DESC, position ASC, created_at ASC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, i *domain.Item) error {
	query := `UPDATE items SET title = ?, description = ?, due_at = ?, priority = ?,
		recurrence = ?, category = ?, pinned = ?, position = ?, completed = ?,
		completed_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.Title,
		i.Description,
		nullableTimeToString(i.DueAt),
		string(i.Priority),
		string(i.Recurrence),
		i.Category,
		boolToInt(i.Pinned),
		i.Position,
		boolToInt(i.Completed),
		nullableTimeToString(i.CompletedAt),
		timeToString(i.UpdatedAt),
		i.ID,
		i.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM items WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) MaxPosition(ctx context.Context, ownerID string) (int, error) {
	var max int
	query := `SELECT COALESCE(MAX(position), 0) FROM items WHERE user_id = ?`
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&max); err != nil {
		return 0, fmt.Errorf("reading max position: %w", err)
	}
	return max, nil
}

func (r *SQLiteItemRepo) Neighbor(ctx context.Context, ownerID string, position int, dir domain.MoveDirection) (*domain.Item, error) {
	var query string
	if dir == domain.MoveUp {
		query = `SELECT ` + itemColumns + ` FROM items
			WHERE user_id = ? AND position < ?
			ORDER BY position DESC LIMIT 1`
	} else {
		query = `SELECT ` + itemColumns + ` FROM items
			WHERE user_id = ? AND position > ?
			ORDER BY position ASC LIMIT 1`
	}
	row := r.db.QueryRowContext(ctx, query, ownerID, position)
	return scanItemRow(row)
}

func (r *SQLiteItemRepo) SetPosition(ctx context.Context, ownerID, id string, position int) error {
	query := `UPDATE items SET position = ? WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, position, id, ownerID); err != nil {
		return fmt.Errorf("setting item position: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) CompleteAll(ctx context.Context, ownerID string, now time.Time) error {
	query := `UPDATE items SET completed = 1, completed_at = ?, updated_at = ?
		WHERE user_id = ? AND completed = 0`
	ts := timeToString(now)
	if _, err := r.db.ExecContext(ctx, query, ts, ts, ownerID); err != nil {
		return fmt.Errorf("completing all items: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) DeleteCompleted(ctx context.Context, ownerID string) error {
	query := `DELETE FROM items WHERE user_id = ? AND completed = 1`
	if _, err := r.db.ExecContext(ctx, query, ownerID); err != nil {
		return fmt.Errorf("deleting completed items: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Counts(ctx context.Context, ownerID string, now time.Time) (ItemCounts, error) {
	var c ItemCounts
	query := `SELECT COUNT(*),
			COALESCE(SUM(completed), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_at IS NOT NULL AND due_at < ? THEN 1 ELSE 0 END), 0)
		FROM items WHERE user_id = ?`
	err := r.db.QueryRowContext(ctx, query, timeToString(now), ownerID).
		Scan(&c.Total, &c.Completed, &c.Overdue)
	if err != nil {
		return ItemCounts{}, fmt.Errorf("counting items: %w", err)
	}
	return c, nil
}

func (r *SQLiteItemRepo) CompletedHistory(ctx context.Context, ownerID string) ([]time.Time, error) {
	query := `SELECT completed_at FROM items
		WHERE user_id = ? AND completed = 1 AND completed_at IS NOT NULL
		ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing completion history: %w", err)
	}
	defer rows.Close()

	var history []time.Time
	for rows.Next() {
		var ts string
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scanning completion timestamp: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing completion timestamp: %w", err)
		}
		history = append(history, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completion history: %w", err)
	}
	return history, nil
}

func (r *SQLiteItemRepo) ListDueBetween(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE user_id = ? AND due_at IS NOT NULL AND due_at >= ? AND due_at < ?
		ORDER BY due_at ASC`
	rows, err := r.db.QueryContext(ctx, query, ownerID,
		timeToString(from), timeToString(to))
	if err != nil {
		return nil, fmt.Errorf("listing items by due window: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *SQLiteItemRepo) Categories(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT DISTINCT category FROM items
		WHERE user_id = ? AND category != '' ORDER BY category`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// scanItemRow scans a single item from a *sql.Row.
func scanItemRow(row *sql.Row) (*domain.Item, error) {
	var i domain.Item
	var priorityStr, recurrenceStr string
	var dueAtStr, completedAtStr sql.NullString
	var pinnedInt, completedInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&i.ID, &i.OwnerID, &i.Title, &i.Description, &dueAtStr, &priorityStr,
		&recurrenceStr, &i.Category, &pinnedInt, &i.Position, &completedInt,
		&completedAtStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	return populateItem(&i, priorityStr, recurrenceStr, dueAtStr, completedAtStr,
		pinnedInt, completedInt, createdAtStr, updatedAtStr)
}

// scanItems scans multiple items from *sql.Rows.
func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		var i domain.Item
		var priorityStr, recurrenceStr string
		var dueAtStr, completedAtStr sql.NullString
		var pinnedInt, completedInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&i.ID, &i.OwnerID, &i.Title, &i.Description, &dueAtStr, &priorityStr,
			&recurrenceStr, &i.Category, &pinnedInt, &i.Position, &completedInt,
			&completedAtStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		item, err := populateItem(&i, priorityStr, recurrenceStr, dueAtStr, completedAtStr,
			pinnedInt, completedInt, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields on an Item after scanning raw values.
func populateItem(
	i *domain.Item,
	priorityStr, recurrenceStr string,
	dueAtStr, completedAtStr sql.NullString,
	pinnedInt, completedInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Item, error) {
	i.Priority = domain.Priority(priorityStr)
	i.Recurrence = domain.Recurrence(recurrenceStr)
	i.Pinned = intToBool(pinnedInt)
	i.Completed = intToBool(completedInt)
	i.DueAt = parseNullableTime(dueAtStr)
	i.CompletedAt = parseNullableTime(completedAtStr)

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return i, nil
}
