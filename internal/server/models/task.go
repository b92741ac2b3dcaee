package models

import "time"

// Task is a private resource owned by exactly one account. OwnerID is set at
// creation from the authenticated identity and never changes afterwards.
type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Completed bool
	CreatedAt time.Time
}
