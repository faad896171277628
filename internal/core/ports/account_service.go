package ports

import (
	"context"

	"github.com/estately/realty-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. Superuser
// and staff flags are never settable through the HTTP surface; they exist
// for the bootstrap/seeding path.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	PasswordRetype string
	Role           string

	IsSuperuser bool

	// Caller is the authenticated account making the request, nil for
	// anonymous registration. Creating an admin account requires a
	// superuser caller.
	Caller *domain.Account
}

// UpdateProfileInput carries profile fields for the self-service "me"
// endpoint. For a full replace every field is required; for a partial
// update nil pointers leave the stored value unchanged.
type UpdateProfileInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Partial   bool
}

// ChangePasswordInput carries the password-change request. Current must
// verify against the stored hash, New must satisfy the password policy,
// differ from Current, and equal Retype.
type ChangePasswordInput struct {
	Current string
	New     string
	Retype  string
}

// AccountService defines account self-service use cases. All operations
// except Register act on the calling account only; cross-account access is
// never possible through this interface.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Get(ctx context.Context, accountID int64) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int64, input UpdateProfileInput) (*domain.Account, error)
	ChangePassword(ctx context.Context, accountID int64, input ChangePasswordInput) error
	Delete(ctx context.Context, accountID int64) error
}

// PasswordPolicy is the pluggable strength contract for new passwords. The
// error returned carries the human-readable reason.
type PasswordPolicy interface {
	Validate(password string) error
}
