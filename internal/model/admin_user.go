package model

import "time"

// AdminUser is a dashboard operator. Passwords are stored as PHC-format
// argon2id hashes.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionClaims is the payload carried in a signed session cookie.
type SessionClaims struct {
	Sub      string `json:"sub"`
	Username string `json:"username"`
	Iat      int64  `json:"iat"`
	Exp      int64  `json:"exp"`
}
