package domain

import "time"

// FavoriteQuote is a quote an owner chose to keep.
type FavoriteQuote struct {
	ID        string
	OwnerID   string
	Quote     string
	Author    string
	Tone      Tone
	Source    string
	CreatedAt time.Time
}
