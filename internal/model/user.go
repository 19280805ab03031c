package model

import "time"

// User represents an authenticated account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// UserBan holds ban state for a user. A ban is active when Permanent is set
// or BanUntil lies in the future.
type UserBan struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	BanUntil  *time.Time `json:"banUntil,omitempty"`
	Permanent bool       `json:"permanent"`
}

// Active reports whether the ban is in effect at the given instant.
func (b *UserBan) Active(now time.Time) bool {
	if b.Permanent {
		return true
	}
	return b.BanUntil != nil && now.Before(*b.BanUntil)
}

// UserResponse is the admin view of a user, including ban state.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"isAdmin"`
	Banned    bool       `json:"banned"`
	Permanent bool       `json:"permanent"`
	BanUntil  *time.Time `json:"banUntil,omitempty"`
}
