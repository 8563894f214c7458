package service

import (
	"errors"
	"fmt"
	"strings"

	"go-product-catalog/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrSessionReplaced    = errors.New("session expired (logged in on another device)")
)

// ValidationError carries every field that failed request validation.
type ValidationError struct {
	Fields []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("field '%s' failed on tag '%s'", f.FailedField, f.Tag))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func invalidField(field, tag, param string) error {
	return &ValidationError{Fields: []*validator.ErrorResponse{{FailedField: field, Tag: tag, Value: param}}}
}
