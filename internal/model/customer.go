// Package model contains domain models. No business logic here.
package model

import "time"

// Customer is the flat record exposed to clients of the list endpoint.
// CreatedAt round-trips as an RFC 3339 string and keeps the upstream offset.
type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
