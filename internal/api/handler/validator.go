package handler

import "github.com/99minutos/vehicles-api/internal/pkg/validation"

// echoValidator adapts the shared validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validation.Validator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator(v *validation.Validator) *echoValidator {
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures are
// *domain.ValidationError values carrying one message per violated rule.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
