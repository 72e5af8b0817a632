package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
)

// ContactUseCase appends contact form submissions to the message log.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Submit stores one contact message.
func (u *ContactUseCase) Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", domainErrors.ErrValidation)
	}
	return u.contacts.Create(ctx, model.ContactMessage{Name: name, Email: email, Message: message})
}
