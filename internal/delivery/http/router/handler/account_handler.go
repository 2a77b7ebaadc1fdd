package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account handlers.
type AccountHandler struct {
	authzUC    usecase.AuthorizationUsecase
	securityUC usecase.SecurityUsecase
	logger     *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(authzUC usecase.AuthorizationUsecase, securityUC usecase.SecurityUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{authzUC: authzUC, securityUC: securityUC, logger: logger}
}

// ChangePasswordRequest is the payload for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// GetAccount returns the account identified by the path parameter. The
// authenticated caller must be that same account.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	account, err := h.authzUC.AuthorizeAccount(c.Request().Context(), principal.Identity, c.Param("accountID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Account retrieved successfully")
}

// GetOwnAccount returns the caller's own account without a subject constraint.
func (h *AccountHandler) GetOwnAccount(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	account, err := h.authzUC.AuthorizeAccount(c.Request().Context(), principal.Identity, "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "Account retrieved successfully")
}

// ChangePassword replaces the caller's own password.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	var input ChangePasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.securityUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		Identity:        principal.Identity,
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}
