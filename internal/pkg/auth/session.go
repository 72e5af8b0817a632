package auth

import "time"

// TokenStrategy issues and verifies session tokens for customers.
type TokenStrategy interface {
	Issue(customerID int64) (string, error)
	Parse(token string) (int64, error)
}

// Options tunes token strategies.
type Options struct {
	TTL time.Duration
}
