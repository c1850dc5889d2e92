// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "grove/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance used for request payloads.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator registered on the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator. Struct tag violations are translated
// into the domain validation error so the error middleware renders them
// uniformly.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
