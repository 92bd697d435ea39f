package repository

import (
	"context"
	"time"

	"github.com/mariechen/ticked/internal/domain"
)

type ItemSort string

const (
	// SortManual is the default ordering: pinned first, then position, then
	// creation time.
	SortManual   ItemSort = "manual"
	SortNewest   ItemSort = "newest"
	SortOldest   ItemSort = "oldest"
	SortDue      ItemSort = "due"
	SortPriority ItemSort = "priority"
)

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// ItemFilter narrows and orders an owner's item listing. Zero values mean
// "no restriction" for Priority, Category and Search.
type ItemFilter struct {
	Status   StatusFilter
	Priority string
	Category string
	Search   string
	Sort     ItemSort
}

// ItemCounts holds owner-scoped aggregate counts for the dashboard.
type ItemCounts struct {
	Total     int
	Completed int
	Overdue   int
}

type ItemRepo interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Item, error)
	List(ctx context.Context, ownerID string, f ItemFilter) ([]*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, ownerID, id string) error

	// MaxPosition returns the greatest position among the owner's items,
	// or 0 when the owner has none.
	MaxPosition(ctx context.Context, ownerID string) (int, error)
	// Neighbor returns the item strictly adjacent to the given position on
	// the requested side: the greatest position below it for up, the least
	// position above it for down. Wraps ErrNotFound when no neighbor exists.
	Neighbor(ctx context.Context, ownerID string, position int, dir domain.MoveDirection) (*domain.Item, error)
	SetPosition(ctx context.Context, ownerID, id string, position int) error

	CompleteAll(ctx context.Context, ownerID string, now time.Time) error
	DeleteCompleted(ctx context.Context, ownerID string) error

	Counts(ctx context.Context, ownerID string, now time.Time) (ItemCounts, error)
	// CompletedHistory returns completion timestamps for the owner's
	// completed items, most recent first.
	CompletedHistory(ctx context.Context, ownerID string) ([]time.Time, error)
	ListDueBetween(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.Item, error)
	Categories(ctx context.Context, ownerID string) ([]string, error)
}

type SubtaskRepo interface {
	Create(ctx context.Context, s *domain.Subtask) error
	// GetByID resolves a subtask through its parent item's owner.
	GetByID(ctx context.Context, ownerID, id string) (*domain.Subtask, error)
	ListByItem(ctx context.Context, itemID string) ([]*domain.Subtask, error)
	Update(ctx context.Context, s *domain.Subtask) error
	Delete(ctx context.Context, ownerID, id string) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type FavoriteQuoteRepo interface {
	Create(ctx context.Context, q *domain.FavoriteQuote) error
	// Exists reports whether the owner already saved this (quote, author) pair.
	Exists(ctx context.Context, ownerID, quote, author string) (bool, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]*domain.FavoriteQuote, error)
	Delete(ctx context.Context, ownerID, id string) error
}
