package domain

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct tag rules live on the
// *Input types in this package.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks an input struct against its validation tags and converts
// the first failure into an EINVALID domain error.
func Validate(op string, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return Invalid(op, fe.Field()+" failed validation on '"+fe.Tag()+"'")
	}
	return Invalid(op, "invalid input")
}
