package domain

import "time"

// User anchors ownership of items and favorite quotes.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
