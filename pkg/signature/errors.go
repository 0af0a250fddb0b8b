package signature

import (
	"errors"
	"fmt"
)

// Configuration error codes. These surface at signature construction or
// command registration time, never during a dispatch.
const (
	// ErrCodeEmptyName indicates a parameter with an empty name.
	ErrCodeEmptyName = "SIG_EMPTY_NAME"

	// ErrCodeDuplicateName indicates two parameters sharing one name.
	ErrCodeDuplicateName = "SIG_DUPLICATE_NAME"

	// ErrCodeBooleanDefault indicates a boolean parameter declaring a
	// default of true. Boolean flags always default to false.
	ErrCodeBooleanDefault = "SIG_BOOLEAN_DEFAULT"

	// ErrCodeParameterOrder indicates a required parameter declared after
	// a defaulted one in a positional signature.
	ErrCodeParameterOrder = "SIG_PARAMETER_ORDER"

	// ErrCodeShortFlagCollision indicates two parameter names starting
	// with the same character in a switch or hybrid signature.
	ErrCodeShortFlagCollision = "SIG_SHORT_FLAG_COLLISION"
)

// ConfigError reports a malformed signature. It is fatal to the
// registration that produced it and to nothing else.
type ConfigError struct {
	// Code is one of the SIG_* error codes.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches two ConfigErrors by code.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// AsConfigError checks if err is a ConfigError and returns it if so.
func AsConfigError(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

func newConfigError(code, format string, args ...any) *ConfigError {
	return &ConfigError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
