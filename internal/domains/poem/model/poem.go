package model

import (
	"time"

	"github.com/google/uuid"
)

// Poem is an immutable entry in the feed. Ordering over the feed is total:
// created_at descending, tie-broken by id ascending.
type Poem struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PoemWithAuthor carries the author display name alongside the poem row.
type PoemWithAuthor struct {
	Poem
	AuthorUsername string `json:"-"`
}
