package model

import "time"

type User struct {
	ID           int64      `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never JSON-encode
	IsAdmin      bool       `json:"isAdmin"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
