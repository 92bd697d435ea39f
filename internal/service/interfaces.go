package service

import (
	"context"
	"time"

	"github.com/mariechen/ticked/internal/analytics"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/quote"
	"github.com/mariechen/ticked/internal/repository"
)

// AddItemInput carries the fields a user supplies when creating an item.
type AddItemInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    domain.Priority
	Recurrence  domain.Recurrence
	Category    string
}

// UpdateItemInput carries the fields a user may edit on an existing item.
type UpdateItemInput struct {
	ID          string
	Title       string
	Description string
	DueAt       *time.Time
	Priority    domain.Priority
	Recurrence  domain.Recurrence
	Category    string
}

type ItemService interface {
	// Add creates an item at the end of the owner's list. A blank title
	// is ignored without error.
	Add(ctx context.Context, ownerID string, in AddItemInput) (*domain.Item, error)
	// Update edits an item's fields, leaving its position and completion
	// state alone. A blank ID or title is ignored without error, as is an
	// ID that does not resolve under the owner.
	Update(ctx context.Context, ownerID string, in UpdateItemInput) error
	Delete(ctx context.Context, ownerID, id string) error

	// Toggle flips an item's completion. Completing a recurring item also
	// appends a fresh copy due one cycle later. An unresolvable ID returns
	// (nil, nil).
	Toggle(ctx context.Context, ownerID, id string) (*domain.Item, error)
	TogglePin(ctx context.Context, ownerID, id string) error
	// Move swaps the item with its neighbor in manual order. Moving past
	// either end is a no-op.
	Move(ctx context.Context, ownerID, id string, dir domain.MoveDirection) error

	CompleteAll(ctx context.Context, ownerID string) error
	DeleteCompleted(ctx context.Context, ownerID string) error

	GetByID(ctx context.Context, ownerID, id string) (*domain.Item, error)
	List(ctx context.Context, ownerID string, f repository.ItemFilter) ([]*domain.Item, error)
	Categories(ctx context.Context, ownerID string) ([]string, error)
}

type SubtaskService interface {
	// Add creates a subtask under the owner's item. A blank title is
	// ignored without error.
	Add(ctx context.Context, ownerID, itemID, title string) (*domain.Subtask, error)
	Toggle(ctx context.Context, ownerID, id string) error
	Delete(ctx context.Context, ownerID, id string) error
	ListByItem(ctx context.Context, ownerID, itemID string) ([]*domain.Subtask, error)
}

// Summary is the owner's productivity dashboard.
type Summary struct {
	Total             int
	Completed         int
	Active            int
	Overdue           int
	CompletedThisWeek int
	Streak            int
	Histogram         [7]analytics.Bucket
}

// CalendarMonth is a month grid with per-day due counts.
type CalendarMonth struct {
	Year  int
	Month time.Month
	// Cells is the Sunday-first grid, 0 marking blank padding cells.
	Cells []int
	// DueByDay maps day of month to how many items are due that day.
	DueByDay map[int]int
}

type AnalyticsService interface {
	Compute(ctx context.Context, ownerID string, now time.Time) (*Summary, error)
	DueCalendar(ctx context.Context, ownerID string, year int, month time.Month, loc *time.Location) (*CalendarMonth, error)
}

type QuoteService interface {
	// Daily resolves a quote toned for the moment: celebratory right
	// after clearing the list, reflective in the evening, motivational
	// otherwise.
	Daily(ctx context.Context, ownerID string, now time.Time) (quote.Result, error)
	Favorite(ctx context.Context, ownerID string, q quote.Result) error
	ListFavorites(ctx context.Context, ownerID string) ([]*domain.FavoriteQuote, error)
	RemoveFavorite(ctx context.Context, ownerID, id string) error
}

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// VerifyToken resolves a session token to the user it belongs to.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}
