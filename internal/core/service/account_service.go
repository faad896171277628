package service

import (
	"context"
	"net/mail"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

// AccountService implements registration and account self-service.
type AccountService struct {
	accounts ports.AccountRepository
	tokens   ports.RefreshTokenStore
	policy   ports.PasswordPolicy
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, tokens ports.RefreshTokenStore, policy ports.PasswordPolicy, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, tokens: tokens, policy: policy, logger: logger}
}

// Register creates an account, its credential, and its initial role in one
// transaction. Requesting the admin role demands a superuser caller and is
// rejected before any row exists. Superuser accounts (bootstrap path only)
// are granted staff status and the admin role as part of the same creation.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	if role == domain.RoleAdmin && !input.IsSuperuser {
		if input.Caller == nil || !input.Caller.IsSuperuser {
			return nil, domain.ErrForbidden
		}
	}

	ve := domain.NewValidationError()
	if input.Username == "" {
		ve.Add("username", "username is required")
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			ve.Add("email", "email is not a valid address")
		}
	}
	if !domain.ValidRole(role) {
		ve.Add("role", "role must be one of admin, agent, user")
	}
	if input.Password == "" {
		ve.Add("password", "password is required")
	} else if err := s.policy.Validate(input.Password); err != nil {
		ve.Add("password", err.Error())
	}
	if input.Password != input.PasswordRetype {
		ve.Add("password_retype", "passwords are not matching")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if input.IsSuperuser {
		// Superusers always come out staff with the admin role, regardless
		// of the requested role.
		account.IsSuperuser = true
		account.IsStaff = true
		role = domain.RoleAdmin
	}

	created, err := s.accounts.CreateWithRole(ctx, account, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("account_id", created.ID).
		Str("role", role).
		Bool("superuser", created.IsSuperuser).
		Msg("account created")
	return created, nil
}

// Get returns the caller's own account.
func (s *AccountService) Get(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}

// UpdateProfile applies a full or partial update to the caller's editable
// profile fields. Roles are read-only through this path.
func (s *AccountService) UpdateProfile(ctx context.Context, accountID int64, input ports.UpdateProfileInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ve := domain.NewValidationError()
	if !input.Partial {
		if input.Username == nil {
			ve.Add("username", "username is required")
		}
		if input.Email == nil {
			ve.Add("email", "email is required")
		}
		if input.FirstName == nil {
			ve.Add("first_name", "first_name is required")
		}
		if input.LastName == nil {
			ve.Add("last_name", "last_name is required")
		}
	}
	if input.Username != nil && *input.Username == "" {
		ve.Add("username", "username must not be empty")
	}
	if input.Email != nil && *input.Email != "" {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			ve.Add("email", "email is not a valid address")
		}
	}
	if ve.HasErrors() {
		return nil, ve
	}

	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.Email != nil {
		account.Email = *input.Email
	}
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}

	return s.accounts.Update(ctx, account)
}

// ChangePassword verifies the current credential, checks the new password
// against the policy, and replaces the hash. All outstanding refresh tokens
// are revoked on success. Every violated field is reported; on any failure
// nothing is mutated.
func (s *AccountService) ChangePassword(ctx context.Context, accountID int64, input ports.ChangePasswordInput) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	ve := domain.NewValidationError()
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Current)) != nil {
		ve.Add("password", "current password is not matching")
	}
	if err := s.policy.Validate(input.New); err != nil {
		ve.Add("password_new", err.Error())
	}
	if input.New != input.Retype {
		ve.Add("password_retype", "password confirmation does not match")
	}
	if input.New == input.Current {
		ve.Add("password_new", "new password must differ from the current one")
	}
	if ve.HasErrors() {
		return ve
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePassword(ctx, accountID, string(hash)); err != nil {
		return err
	}

	if err := s.tokens.RevokeAll(ctx, accountID); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("failed to revoke refresh tokens")
	}

	s.logger.Info().Int64("account_id", accountID).Msg("password changed")
	return nil
}

// Delete removes the caller's account. Accounts that still own listings are
// protected by the store and cannot be deleted.
func (s *AccountService) Delete(ctx context.Context, accountID int64) error {
	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return err
	}
	if err := s.tokens.RevokeAll(ctx, accountID); err != nil {
		s.logger.Error().Err(err).Int64("account_id", accountID).Msg("failed to revoke refresh tokens")
	}
	s.logger.Info().Int64("account_id", accountID).Msg("account deleted")
	return nil
}
