package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidAccount = errors.New("invalid account data")
)

// ValidationError lists every rejected field of a payload together with a
// human readable reason. Field keys are JSON names.
type ValidationError struct {
	Fields map[string]string
}

// NewFieldError returns a ValidationError for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidAccount.Error()
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return ErrInvalidAccount.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidAccount) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidAccount
}
