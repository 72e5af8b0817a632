package repository

import (
	"context"

	"github.com/freshdairy/freshdairy/internal/domain/model"
)

// ContactRepository is an append-only log of contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, m model.ContactMessage) (*model.ContactMessage, error)
	List(ctx context.Context) ([]model.ContactMessage, error)
}
