package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/mariechen/ticked/internal/domain"
)

var testEmailCounter atomic.Int64

// User fixtures

func NewTestUser(name string) *domain.User {
	n := testEmailCounter.Add(1)
	return &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtesth",
		CreatedAt:    time.Now().UTC(),
	}
}

// Item options

type ItemOption func(*domain.Item)

func WithDueAt(d time.Time) ItemOption {
	return func(i *domain.Item) {
		i.DueAt = &d
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(i *domain.Item) {
		i.Priority = p
	}
}

func WithRecurrence(r domain.Recurrence) ItemOption {
	return func(i *domain.Item) {
		i.Recurrence = r
	}
}

func WithCategory(c string) ItemOption {
	return func(i *domain.Item) {
		i.Category = c
	}
}

func WithPinned() ItemOption {
	return func(i *domain.Item) {
		i.Pinned = true
	}
}

func WithPosition(p int) ItemOption {
	return func(i *domain.Item) {
		i.Position = p
	}
}

func WithDescription(d string) ItemOption {
	return func(i *domain.Item) {
		i.Description = d
	}
}

// WithCompletedAt marks the item completed at the given time.
func WithCompletedAt(at time.Time) ItemOption {
	return func(i *domain.Item) {
		i.SetCompleted(true, at)
	}
}

func WithCreatedAt(at time.Time) ItemOption {
	return func(i *domain.Item) {
		i.CreatedAt = at
		i.UpdatedAt = at
	}
}

func NewTestItem(ownerID, title string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC()
	i := &domain.Item{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Title:      title,
		Priority:   domain.PriorityMedium,
		Recurrence: domain.RecurrenceNone,
		Position:   1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func NewTestSubtask(itemID, title string) *domain.Subtask {
	return &domain.Subtask{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}

func NewTestFavoriteQuote(ownerID, quote, author string) *domain.FavoriteQuote {
	return &domain.FavoriteQuote{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Quote:     quote,
		Author:    author,
		Tone:      domain.ToneMotivational,
		Source:    "fallback",
		CreatedAt: time.Now().UTC(),
	}
}
