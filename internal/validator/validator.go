package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank rejects strings that are empty after trimming whitespace. The
// stock "required" tag accepts all-whitespace content, which is not enough
// for post and comment bodies.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
