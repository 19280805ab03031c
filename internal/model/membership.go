package model

import "time"

// Membership records an account's membership status. AccountName matches the
// username of the owning user; records may exist for accounts that have not
// signed up yet, so there is no foreign key to user.
type Membership struct {
	ID          string     `json:"id"`
	AccountName string     `json:"accountName"`
	Status      string     `json:"status"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}
