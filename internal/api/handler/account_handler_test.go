package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/estately/realty-api/internal/api/middleware"
	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

type stubAccountService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.Account, error)
	getFn            func(ctx context.Context, accountID int64) (*domain.Account, error)
	updateProfileFn  func(ctx context.Context, accountID int64, input ports.UpdateProfileInput) (*domain.Account, error)
	changePasswordFn func(ctx context.Context, accountID int64, input ports.ChangePasswordInput) error
	deleteFn         func(ctx context.Context, accountID int64) error
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountService) Get(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.getFn(ctx, accountID)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, accountID int64, input ports.UpdateProfileInput) (*domain.Account, error) {
	return s.updateProfileFn(ctx, accountID, input)
}

func (s *stubAccountService) ChangePassword(ctx context.Context, accountID int64, input ports.ChangePasswordInput) error {
	return s.changePasswordFn(ctx, accountID, input)
}

func (s *stubAccountService) Delete(ctx context.Context, accountID int64) error {
	return s.deleteFn(ctx, accountID)
}

func TestAccountHandler_Register_Anonymous(t *testing.T) {
	e := echo.New()
	stub := &stubAccountService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.Account, error) {
			if input.Caller != nil {
				t.Fatalf("anonymous registration should carry no caller")
			}
			if input.Username != "alice" || input.Role != "" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Account{
				ID:       1,
				Username: input.Username,
				Email:    input.Email,
				Roles:    []domain.Role{domain.NewRole(domain.RoleUser)},
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := `{"username":"alice","email":"a@example.com","password":"hunter2abc","password_retype":"hunter2abc"}`
	req := jsonRequest(http.MethodPost, "/v1/auth/register", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	roles, ok := resp["roles"].([]any)
	if !ok || len(roles) != 1 || roles[0] != "user" {
		t.Fatalf("unexpected roles: %+v", resp["roles"])
	}
}

func TestAccountHandler_Register_PassesAuthenticatedCaller(t *testing.T) {
	e := echo.New()
	super := &domain.Account{ID: 9, Username: "root", IsSuperuser: true}
	stub := &stubAccountService{
		getFn: func(_ context.Context, accountID int64) (*domain.Account, error) {
			if accountID != 9 {
				t.Fatalf("unexpected caller lookup: %d", accountID)
			}
			return super, nil
		},
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.Account, error) {
			if input.Caller == nil || !input.Caller.IsSuperuser {
				t.Fatalf("caller not forwarded: %+v", input.Caller)
			}
			return &domain.Account{
				ID:       2,
				Username: input.Username,
				Roles:    []domain.Role{domain.NewRole(domain.RoleAdmin)},
			}, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := `{"username":"eve","email":"e@example.com","password":"hunter2abc","password_retype":"hunter2abc","role":"admin"}`
	req := jsonRequest(http.MethodPost, "/v1/auth/register", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(9))

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAccountHandler_Me(t *testing.T) {
	e := echo.New()
	stub := &stubAccountService{
		getFn: func(_ context.Context, accountID int64) (*domain.Account, error) {
			return &domain.Account{ID: accountID, Username: "alice", Email: "a@example.com"}, nil
		},
	}
	handler := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(5))

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(5) || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAccountHandler_Me_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler := NewAccountHandler(&stubAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAccountHandler_PatchMe_PartialFlag(t *testing.T) {
	e := echo.New()
	stub := &stubAccountService{
		updateProfileFn: func(_ context.Context, accountID int64, input ports.UpdateProfileInput) (*domain.Account, error) {
			if !input.Partial {
				t.Fatalf("PATCH must request a partial update")
			}
			if input.FirstName == nil || *input.FirstName != "Alice" {
				t.Fatalf("first name not forwarded: %+v", input)
			}
			if input.Username != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &domain.Account{ID: accountID, Username: "alice", FirstName: "Alice"}, nil
		},
	}
	handler := NewAccountHandler(stub)

	req := jsonRequest(http.MethodPatch, "/v1/accounts/me", `{"first_name":"Alice"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(5))

	if err := handler.PatchMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAccountHandler_UpdateMe_FullFlag(t *testing.T) {
	e := echo.New()
	stub := &stubAccountService{
		updateProfileFn: func(_ context.Context, _ int64, input ports.UpdateProfileInput) (*domain.Account, error) {
			if input.Partial {
				t.Fatalf("PUT must request a full update")
			}
			return &domain.Account{ID: 5, Username: "alice"}, nil
		},
	}
	handler := NewAccountHandler(stub)

	body := `{"username":"alice","email":"a@example.com","first_name":"Alice","last_name":"Smith"}`
	req := jsonRequest(http.MethodPut, "/v1/accounts/me", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(5))

	if err := handler.UpdateMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	e := echo.New()
	stub := &stubAccountService{
		changePasswordFn: func(_ context.Context, accountID int64, input ports.ChangePasswordInput) error {
			if accountID != 5 {
				t.Fatalf("unexpected account id: %d", accountID)
			}
			if input.Current != "oldpass99" || input.New != "newpass99" || input.Retype != "newpass99" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	handler := NewAccountHandler(stub)

	body := `{"password":"oldpass99","password_new":"newpass99","password_retype":"newpass99"}`
	req := jsonRequest(http.MethodPost, "/v1/accounts/me/change-password", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(5))

	if err := handler.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAccountHandler_DeleteMe(t *testing.T) {
	e := echo.New()
	deleted := false
	stub := &stubAccountService{
		deleteFn: func(_ context.Context, accountID int64) error {
			deleted = accountID == 5
			return nil
		},
	}
	handler := NewAccountHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/accounts/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxAccountID, int64(5))

	if err := handler.DeleteMe(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !deleted {
		t.Fatalf("delete not forwarded with caller id")
	}
}
