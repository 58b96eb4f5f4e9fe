package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation messages shared by entity rules.
const (
	MsgRequired = "is required"
	MsgTooLong  = "must be at most %d characters"
)

// FieldError is a single failed rule for one field.
type FieldError struct {
	Field   string
	Message string
}

// Validator checks one rule and returns nil when it holds.
type Validator func() *FieldError

// Validate runs every validator and collects the failures into a single
// *ValidationError. The first failure per field wins. Returns nil when all
// validators pass.
func Validate(validators ...Validator) error {
	var fields map[string]string
	for _, v := range validators {
		fe := v()
		if fe == nil {
			continue
		}
		if fields == nil {
			fields = make(map[string]string)
		}
		if _, seen := fields[fe.Field]; !seen {
			fields[fe.Field] = fe.Message
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Required rejects empty and whitespace-only values.
func Required(field, value string) Validator {
	return func() *FieldError {
		if strings.TrimSpace(value) == "" {
			return &FieldError{Field: field, Message: MsgRequired}
		}
		return nil
	}
}

// MaxLen rejects values longer than n characters. Length is counted in runes,
// not bytes.
func MaxLen(field, value string, n int) Validator {
	return func() *FieldError {
		if utf8.RuneCountInString(value) > n {
			return &FieldError{Field: field, Message: fmt.Sprintf(MsgTooLong, n)}
		}
		return nil
	}
}

// Optional applies rule only when value is supplied.
func Optional[T any](value *T, rule func(T) Validator) Validator {
	return func() *FieldError {
		if value == nil {
			return nil
		}
		return rule(*value)()
	}
}
