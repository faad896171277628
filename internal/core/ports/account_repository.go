package ports

import (
	"context"

	"github.com/estately/realty-api/internal/core/domain"
)

// AccountRepository defines persistence for accounts and their role set.
type AccountRepository interface {
	// CreateWithRole inserts the account, its credential, and its initial
	// role assignment in a single transaction. The stored account is
	// returned with roles loaded.
	CreateWithRole(ctx context.Context, account *domain.Account, roleName string) (*domain.Account, error)

	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)

	// Update persists profile fields (username, email, first/last name) and
	// modified_at. Roles and credentials are not touched by this call.
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// UpdatePassword replaces the stored credential hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// ReplaceRoles makes the stored role set exactly roleNames, creating
	// missing roles lazily (get-or-create by name).
	ReplaceRoles(ctx context.Context, accountID int64, roleNames []string) error

	// Delete removes the account row. Returns domain.ErrAccountProtected
	// when the account still owns listings.
	Delete(ctx context.Context, id int64) error
}
