package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin handlers.
type AdminHandler struct {
	authzUC    usecase.AuthorizationUsecase
	securityUC usecase.SecurityUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(authzUC usecase.AuthorizationUsecase, securityUC usecase.SecurityUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{authzUC: authzUC, securityUC: securityUC, logger: logger}
}

// AdminView is the public projection of an admin record.
type AdminView struct {
	ExternalID  string `json:"externalId"`
	DisplayName string `json:"displayName"`
}

func toAdminView(admin *entity.Admin) *AdminView {
	if admin == nil {
		return nil
	}

	return &AdminView{
		ExternalID:  admin.ExternalID,
		DisplayName: admin.DisplayName,
	}
}

// GetAdmin returns the admin record identified by the path parameter. The
// authenticated caller must be that same admin.
func (h *AdminHandler) GetAdmin(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	admin, err := h.authzUC.AuthorizeAdmin(c.Request().Context(), principal.Identity, c.Param("adminID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminView(admin), "Admin retrieved successfully")
}

// UnlockDueAccounts clears expired lockouts. Wired as an operational endpoint
// so a scheduler can trigger the sweep.
func (h *AdminHandler) UnlockDueAccounts(c echo.Context) error {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	// Only admins may run maintenance sweeps.
	if _, err := h.authzUC.AuthorizeAdmin(c.Request().Context(), principal.Identity, ""); err != nil {
		return errors.WithStack(err)
	}

	unlocked, err := h.securityUC.UnlockDueAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unlocked": unlocked}, "Unlock sweep completed")
}
