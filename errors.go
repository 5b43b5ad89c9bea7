package labelgo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/labelgo/label"
	"github.com/hupe1980/labelgo/predicate"
)

// ConfigurationError indicates a malformed call: a placeholder with neither
// value nor label, or an unsupported predicate form.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigurationError struct {
	Reason string
	cause  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// LookupError indicates a placeholder referencing a value or label absent
// from the current label map.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LookupError struct {
	// Side is "value" or "label", naming which side of the pair was missing.
	Side string
	cause error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Side, e.cause)
}

func (e *LookupError) Unwrap() error { return e.cause }

// ValidationError indicates a predicate that produced an undefined result
// where a definite boolean was required.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ValidationError struct {
	Reason string
	cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.cause }

// ConflictError indicates a transform that would map one value to two labels
// or one label to two values. Values and Labels list the offenders.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConflictError struct {
	Values []string
	Labels []string
	cause  error
}

func (e *ConflictError) Error() string {
	var parts []string
	if len(e.Values) > 0 {
		parts = append(parts, fmt.Sprintf("values [%s]", strings.Join(e.Values, ", ")))
	}
	if len(e.Labels) > 0 {
		parts = append(parts, fmt.Sprintf("labels [%s]", strings.Join(e.Labels, ", ")))
	}
	return "label conflict: " + strings.Join(parts, "; ")
}

func (e *ConflictError) Unwrap() error { return e.cause }

// translateError maps subpackage errors onto the public taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dup *label.DuplicateError
	if errors.As(err, &dup) {
		return &ConflictError{Values: dup.Values, Labels: dup.Labels, cause: err}
	}

	switch {
	case errors.Is(err, label.ErrEmptyPlaceholder):
		return &ConfigurationError{Reason: "placeholder needs a value or a label", cause: err}
	case errors.Is(err, label.ErrValueNotFound):
		return &LookupError{Side: "value", cause: err}
	case errors.Is(err, label.ErrLabelNotFound):
		return &LookupError{Side: "label", cause: err}
	case errors.Is(err, predicate.ErrNotRegistered):
		return &ConfigurationError{Reason: err.Error(), cause: err}
	case errors.Is(err, predicate.ErrBadForm):
		return &ConfigurationError{Reason: err.Error(), cause: err}
	case errors.Is(err, predicate.ErrUndefined):
		return &ValidationError{Reason: err.Error(), cause: err}
	}

	return err
}
