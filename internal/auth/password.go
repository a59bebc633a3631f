package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/grocerybill/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid clerk name or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrClerkExists        = errors.New("clerk name already registered")
)

// ClerkStorage defines the interface for clerk persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type ClerkStorage interface {
	CreateClerk(ctx context.Context, clerk *models.Clerk) error
	GetClerkByName(ctx context.Context, name string) (*models.Clerk, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage ClerkStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage ClerkStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost returns a copy of the authenticator that hashes with the given bcrypt cost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	return &PasswordAuthenticator{storage: a.storage, cost: cost}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new clerk account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, credential string) (*models.Clerk, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetClerkByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up clerk: %w", err)
	}
	if existing != nil {
		return nil, ErrClerkExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	clerk := models.NewClerk(name, string(hashed))
	if err := a.storage.CreateClerk(ctx, clerk); err != nil {
		return nil, fmt.Errorf("failed to create clerk: %w", err)
	}

	return clerk, nil
}

// Authenticate verifies the name and password, returning the clerk if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, name, credential string) (*models.Clerk, error) {
	clerk, err := a.storage.GetClerkByName(ctx, name)
	if err != nil || clerk == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(clerk.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return clerk, nil
}
