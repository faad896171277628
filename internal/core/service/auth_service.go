package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims are the JWT claims issued by this service. Sub carries the account
// id; roles are deliberately absent so capability checks always read the
// store, not a stale token.
type Claims struct {
	Username  string `json:"username,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// AuthService implements login and refresh-token rotation.
type AuthService struct {
	accounts   ports.AccountRepository
	tokens     ports.RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, tokens ports.RefreshTokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:   accounts,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Login verifies credentials and issues a fresh token pair. Inactive
// accounts cannot log in.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, *domain.Account, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("username", username).Msg("login failed")
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int64("account_id", account.ID).Msg("login succeeded")
	return pair, account, nil
}

// Refresh validates a refresh token, revokes its jti, and issues a new pair.
// A token that was already rotated or revoked is rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.TokenType != tokenTypeRefresh || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	ok, err := s.tokens.Validate(ctx, accountID, claims.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	if err := s.tokens.Revoke(ctx, accountID, claims.ID); err != nil {
		return nil, err
	}
	return s.issuePair(ctx, account)
}

func (s *AuthService) issuePair(ctx context.Context, account *domain.Account) (*ports.TokenPair, error) {
	now := time.Now()
	sub := strconv.FormatInt(account.ID, 10)

	access, err := s.sign(Claims{
		Username:  account.Username,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return nil, err
	}

	jti := newJTI()
	refresh, err := s.sign(Claims{
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, account.ID, jti, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// newJTI returns a random token identifier.
func newJTI() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}
