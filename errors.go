package voronoiplay

import (
	"fmt"

	"github.com/pkg/errors"
)

// InputError is returned for point data we can't accept; malformed JSON or
// coordinates that aren't finite numbers.
type InputError struct {
	// Path of the file being read, if any
	Path string

	// Index of the offending point, -1 if the data couldn't be parsed at all
	Index int

	Err error
}

// Error implements error
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Path)
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: point %d", msg, e.Index)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap returns the underlying error
func (e *InputError) Unwrap() error {
	return e.Err
}

// ConfigError is returned for settings we can't run with, ie. a bounding
// rectangle with no area or a negative random count.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements error
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// IsInputError returns if err is (or wraps) an InputError
func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

// IsConfigError returns if err is (or wraps) a ConfigError
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

func newConfigError(field, format string, args ...interface{}) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
