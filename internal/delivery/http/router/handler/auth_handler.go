// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/http/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	securityUC     usecase.SecurityUsecase
	tokens         service.TokenService
	socialVerifier service.SocialVerifier
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	securityUC usecase.SecurityUsecase,
	tokens service.TokenService,
	socialVerifier service.SocialVerifier,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		securityUC:     securityUC,
		tokens:         tokens,
		socialVerifier: socialVerifier,
		logger:         logger,
	}
}

// LoginRequest is the payload for a password login.
type LoginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SocialLoginRequest is the payload for a social login.
type SocialLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// LoginResponse carries the issued token and the caller's resolved permissions.
type LoginResponse struct {
	Token       string       `json:"token,omitempty"`
	Account     *AccountView `json:"account,omitempty"`
	AccessNames []string     `json:"accessNames"`
	Registered  bool         `json:"registered"`
}

// AccountView is the public projection of an account.
type AccountView struct {
	ExternalID string `json:"externalId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Status     string `json:"status"`
}

func toAccountView(account *entity.Account) *AccountView {
	if account == nil {
		return nil
	}

	return &AccountView{
		ExternalID: account.ExternalID,
		Username:   account.Username,
		Email:      account.Email,
		Status:     account.Status.String(),
	}
}

// Login handles the password login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.securityUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Identity: input.Identity,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokens.IssueToken(&entity.Principal{
		AccountID:  output.Account.ID,
		ExternalID: output.Account.ExternalID,
		Identity:   input.Identity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:       token,
		Account:     toAccountView(output.Account),
		AccessNames: output.AccessNames,
		Registered:  true,
	}, "Login successful")
}

// SocialLogin handles the social login request. The provider ID token is
// verified first; an email without a local account is not an error, the
// response simply carries no token so the client can start a signup flow.
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	var input SocialLoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	identity, err := h.socialVerifier.VerifyIDToken(c.Request().Context(), input.IDToken)
	if err != nil {
		return response.Unauthorized(c, "SOCIAL_TOKEN_INVALID", "Invalid social identity token")
	}

	output, err := h.securityUC.SocialAuthenticate(c.Request().Context(), &usecase.SocialAuthenticateInput{
		Email:    identity.Email,
		Platform: identity.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Account == nil {
		return response.Success(c, http.StatusOK, LoginResponse{
			AccessNames: output.AccessNames,
			Registered:  false,
		}, "No account registered for this identity")
	}

	token, err := h.tokens.IssueToken(&entity.Principal{
		AccountID:  output.Account.ID,
		ExternalID: output.Account.ExternalID,
		Identity:   output.Account.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:       token,
		Account:     toAccountView(output.Account),
		AccessNames: output.AccessNames,
		Registered:  true,
	}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
