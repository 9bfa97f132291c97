package entities

import "time"

// User is an API account that can obtain a bearer token.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	Role           string
	CreatedAt      time.Time
}
