package model

import "time"

// Account is a managed record moving through a fixed lifecycle of statuses.
type Account struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Status    Status    `json:"status"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}
