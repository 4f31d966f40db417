package domain

import "time"

// Movie represents a tracked movie record. AddedBy references the owning
// user and is fixed at creation; only the owner may update or delete the
// record, while the vote counters are open to any caller.
type Movie struct {
	ID         int64
	Title      string
	Genre      string
	Platforms  []string
	Synopsis   string
	AddedBy    int64
	ThumbsUp   int64
	ThumbsDown int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
