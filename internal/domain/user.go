package domain

import "time"

// User represents an account able to create campaigns and donate.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
