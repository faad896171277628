package ports

import (
	"context"

	"github.com/estately/realty-api/internal/core/domain"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// AuthService issues and refreshes bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, *domain.Account, error)
	// Refresh validates and rotates a refresh token, returning a new pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
