package domain

import "time"

// Subtask is a checklist entry owned by exactly one Item. It is removed by
// the store's cascade when the parent item is deleted.
type Subtask struct {
	ID        string
	ItemID    string
	Title     string
	Completed bool
	CreatedAt time.Time
}
