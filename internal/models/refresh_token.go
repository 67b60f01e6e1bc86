package models

import "time"

// RefreshToken tracks an issued refresh token so rotation and logout can
// revoke it. Tokens live in the in-memory auth registry.
type RefreshToken struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	IsRevoked bool      `json:"isRevoked"`
}
