package request

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation on a parsed form value.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// EditAccountForm is the single-record edit submission.
type EditAccountForm struct {
	Username string `validate:"required,max=64"`
	Email    string `validate:"required,email"`
	Status   string `validate:"required"`
	Country  string `validate:"omitempty,max=64"`
}

// LoginForm is the login submission.
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}
