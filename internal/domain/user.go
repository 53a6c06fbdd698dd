package domain

import "time"

// User is a library patron or staff member. Role is fixed at creation.
type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}
