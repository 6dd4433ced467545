// Package validation runs struct-tag rules and maps failures onto errs.ErrInvalid.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tinoosan/social/internal/errs"
	"github.com/tinoosan/social/internal/social"
)

// Domain rule aliases usable in `validate` tags. Their bounds come from the
// social package constants.
const (
	TagPassword    = "password"
	TagMessageText = "message_text"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias(TagPassword, fmt.Sprintf("min=%d", social.MinPasswordLen))
	v.RegisterAlias(TagMessageText, fmt.Sprintf("required,max=%d", social.MaxMessageLen))
	return v
}

// Struct validates v against its `validate` tags. Any rule violation is
// returned wrapping errs.ErrInvalid with the first failing field named.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s", errs.ErrInvalid, describe(fe))
	}
	return fmt.Errorf("%w: %v", errs.ErrInvalid, err)
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.ActualTag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	default:
		return field + " failed " + fe.ActualTag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
