package model

import "time"

// ContactMessage is one entry of the append-only contact form log.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
