package model

import "time"

// Customer represents a registered shopper in the customer directory.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
