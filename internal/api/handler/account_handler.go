package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/realty-api/internal/api/metrics"
	"github.com/estately/realty-api/internal/api/middleware"
	"github.com/estately/realty-api/internal/core/domain"
	"github.com/estately/realty-api/internal/core/ports"
)

// AccountHandler handles registration and account self-service. Every
// self-service operation acts on the authenticated caller's own row only.
type AccountHandler struct {
	accountService ports.AccountService
}

func NewAccountHandler(accountService ports.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// OptionalAuth may have identified the caller; the admin-role gate
	// needs it. Anonymous registration passes a nil caller.
	var caller *domain.Account
	if id, ok := c.Get(middleware.CtxAccountID).(int64); ok && id > 0 {
		if acct, err := h.accountService.Get(c.Request().Context(), id); err == nil {
			caller = acct
		}
	}

	account, err := h.accountService.Register(c.Request().Context(), ports.RegisterInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		PasswordRetype: req.PasswordRetype,
		Role:           req.Role,
		Caller:         caller,
	})
	if err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	metrics.AccountsCreatedTotal.WithLabelValues(role).Inc()
	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Me returns the caller's own profile.
//
// @Summary      Get own profile
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/accounts/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.accountService.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// UpdateMe fully replaces the caller's editable profile fields.
//
// @Summary      Replace own profile
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/accounts/me [put]
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	return h.updateProfile(c, false)
}

// PatchMe updates only the supplied profile fields.
//
// @Summary      Update own profile
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/accounts/me [patch]
func (h *AccountHandler) PatchMe(c echo.Context) error {
	return h.updateProfile(c, true)
}

func (h *AccountHandler) updateProfile(c echo.Context, partial bool) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accountService.UpdateProfile(c.Request().Context(), accountID, ports.UpdateProfileInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Partial:   partial,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// ChangePassword replaces the caller's credential.
//
// @Summary      Change own password
// @Tags         accounts
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Password change request"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/accounts/me/change-password [post]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.accountService.ChangePassword(c.Request().Context(), accountID, ports.ChangePasswordInput{
		Current: req.Password,
		New:     req.PasswordNew,
		Retype:  req.PasswordRetype,
	})
	if err != nil {
		return err
	}

	metrics.PasswordChangesTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// DeleteMe removes the caller's account immediately and irrevocably.
//
// @Summary      Delete own account
// @Tags         accounts
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/accounts/me [delete]
func (h *AccountHandler) DeleteMe(c echo.Context) error {
	accountID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	if err := h.accountService.Delete(c.Request().Context(), accountID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
