package domain

import "time"

// User represents one registration record as stored.
type User struct {
	ID           int64
	Name         string
	Email        string
	Company      string
	PasswordHash string
	CreatedAt    time.Time
}
