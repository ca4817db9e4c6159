package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail valida un email fuera del binding de gin (por ejemplo los
// datos de visitante en compras).
func IsEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// Struct valida un struct con sus tags validate.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
