package storage

import "time"

// Goal is one node of the goal tree. Depth is derived from the parent
// chain, not stored.
type Goal struct {
	ID          int64
	ParentID    *int64
	Title       string
	Status      string
	Boss        bool
	BaseXP      int
	Deadline    *time.Time
	BlockedBy   []int64
	CreatedAt   time.Time
	CompletedAt *time.Time
}
