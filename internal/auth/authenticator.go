package auth

import (
	"context"

	"github.com/mmynk/grocerybill/internal/models"
)

// Authenticator defines the interface for clerk authentication implementations.
// This abstraction allows swapping between different auth methods (password, badge
// scan, etc.) without changing the service layer code.
type Authenticator interface {
	// Register creates a new clerk account with the given name and credential.
	Register(ctx context.Context, name, credential string) (*models.Clerk, error)

	// Authenticate verifies the clerk's credentials and returns the clerk if successful.
	Authenticate(ctx context.Context, name, credential string) (*models.Clerk, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
