package domain

import "time"

type Item struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	DueAt       *time.Time
	Priority    Priority
	Recurrence  Recurrence
	Category    string
	Pinned      bool

	// Position orders one owner's items under manual sorting. Values are
	// not required to be contiguous; new items always sort last.
	Position int

	Completed   bool
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overdue reports whether the item has a due date in the past and is not done.
func (i *Item) Overdue(now time.Time) bool {
	return i.DueAt != nil && !i.Completed && i.DueAt.Before(now)
}

// NextDueDate computes the due date of the next occurrence. Calendar-day
// addition keeps the original wall-clock time across DST shifts. Returns
// nil when the item has no due date or does not recur.
func (i *Item) NextDueDate() *time.Time {
	if i.DueAt == nil || i.Recurrence == RecurrenceNone {
		return nil
	}
	var next time.Time
	switch i.Recurrence {
	case RecurrenceDaily:
		next = i.DueAt.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		next = i.DueAt.AddDate(0, 0, 7)
	default:
		return nil
	}
	return &next
}

// RollForward materializes a draft of the next occurrence of a recurring
// item. The draft copies title, description, priority, recurrence, category
// and pinned verbatim, starts incomplete, and carries the shifted due date.
// Returns nil when the item does not recur or has no due date to anchor the
// next occurrence. ID and Position are left for the caller to assign.
func (i *Item) RollForward() *Item {
	next := i.NextDueDate()
	if next == nil {
		return nil
	}
	return &Item{
		OwnerID:     i.OwnerID,
		Title:       i.Title,
		Description: i.Description,
		DueAt:       next,
		Priority:    i.Priority,
		Recurrence:  i.Recurrence,
		Category:    i.Category,
		Pinned:      i.Pinned,
	}
}

// SetCompleted flips completion state keeping the completed/completedAt
// invariant: CompletedAt is non-nil iff Completed is true.
func (i *Item) SetCompleted(done bool, now time.Time) {
	i.Completed = done
	if done {
		t := now
		i.CompletedAt = &t
	} else {
		i.CompletedAt = nil
	}
}
