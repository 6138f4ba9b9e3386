package model

import "github.com/google/uuid"

// Item is the domain model for a todo entry.
// ID is assigned once by List and never changes.
type Item struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}

// IDFunc produces a fresh item identity.
type IDFunc func() uuid.UUID

// NewID returns a time-ordered UUIDv7, falling back to a random v4
// if the clock source fails.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
