// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "backoffice/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates a request validator with struct tag validation enabled.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound request struct against its validation tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
