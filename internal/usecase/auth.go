package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/freshdairy/freshdairy/internal/domain/errors"
	"github.com/freshdairy/freshdairy/internal/domain/model"
	"github.com/freshdairy/freshdairy/internal/domain/repository"
	pkgAuth "github.com/freshdairy/freshdairy/internal/pkg/auth"
)

// AuthUseCase is the customer directory: registration, credential
// verification, and session token management.
type AuthUseCase struct {
	customers repository.CustomerRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.TokenStrategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(customers repository.CustomerRepository, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenStrategy) *AuthUseCase {
	return &AuthUseCase{customers: customers, hasher: hasher, tokens: tokens}
}

// Register creates a customer and returns it together with a session token.
// A taken email surfaces as ErrAlreadyExists, distinct from plain validation
// failure.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.Customer, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", domainErrors.ErrValidation)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	customer, err := u.customers.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(customer.ID)
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

// Authenticate verifies credentials and returns the customer with a fresh
// session token. Unknown email and wrong password both map to
// ErrInvalidCredentials so the response never reveals which one it was.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.Customer, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	customer, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(customer.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(customer.ID)
	if err != nil {
		return nil, "", err
	}

	return customer, token, nil
}

// ParseToken extracts the customer id from a session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.Parse(token)
}

// GetByID fetches a customer by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}
