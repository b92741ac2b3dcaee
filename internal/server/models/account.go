// Package models defines server-side persistence entities.
package models

import "time"

// Account is a registered user identity. Email is the unique identity key;
// uniqueness is enforced case-insensitively by the store.
//
// PasswordHash is a bcrypt digest. It must never be logged or serialized to
// any caller.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
