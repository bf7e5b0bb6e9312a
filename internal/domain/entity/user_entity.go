package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds an scrypt hash ("<hex key>.<salt>") and is never serialised
// to clients.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

