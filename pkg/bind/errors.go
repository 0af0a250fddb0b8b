package bind

import (
	"errors"
	"fmt"
	"strings"
)

// Binding error codes. Every code maps to one diagnostic template in the
// run loop; none of them terminates the process.
const (
	// ErrCodeCastFailed indicates a token the parameter's caster rejected.
	ErrCodeCastFailed = "ARG_CAST_FAILED"

	// ErrCodeMalformedOption indicates a token without a leading hyphen
	// where an option was required.
	ErrCodeMalformedOption = "ARG_MALFORMED_OPTION"

	// ErrCodeUnknownOption indicates an option name or short flag that is
	// not declared by the signature.
	ErrCodeUnknownOption = "ARG_UNKNOWN_OPTION"

	// ErrCodeIllegalBooleanCluster indicates a clustered short flag that
	// resolves to a non-boolean parameter.
	ErrCodeIllegalBooleanCluster = "ARG_ILLEGAL_BOOLEAN_CLUSTER"

	// ErrCodeOptionValueMissing indicates a non-boolean option at the end
	// of the token list with no value token after it.
	ErrCodeOptionValueMissing = "ARG_OPTION_VALUE_MISSING"

	// ErrCodeMissingRequiredOptions indicates required options absent
	// after a full switch or hybrid scan.
	ErrCodeMissingRequiredOptions = "ARG_MISSING_REQUIRED_OPTIONS"

	// ErrCodeTooFewArguments indicates fewer positional tokens than
	// required parameters.
	ErrCodeTooFewArguments = "ARG_TOO_FEW"

	// ErrCodeTooManyArguments indicates more positional tokens than
	// declared parameters.
	ErrCodeTooManyArguments = "ARG_TOO_MANY"
)

// Error is a binding failure with an ARG_* code. Parameter and Value are
// set for cast failures, Parameter alone for option-shaped failures, and
// Missing for missing-required failures.
type Error struct {
	// Code is one of the ARG_* error codes.
	Code string

	// Message is a human-readable description.
	Message string

	// Parameter is the parameter or option the failure concerns, if any.
	Parameter string

	// Value is the raw token that failed to cast, if any.
	Value string

	// Missing lists the absent required parameters, in declaration order.
	Missing []string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches two binding errors by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// AsError checks if err is a binding Error and returns it if so.
func AsError(err error) (*Error, bool) {
	var bindErr *Error
	if errors.As(err, &bindErr) {
		return bindErr, true
	}
	return nil, false
}

// NewError creates a binding Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func castError(parameter, raw string, cause error) *Error {
	return &Error{
		Code:      ErrCodeCastFailed,
		Message:   fmt.Sprintf("cannot convert %q for parameter %q", raw, parameter),
		Parameter: parameter,
		Value:     raw,
		Cause:     cause,
	}
}

func malformedOption(token string) *Error {
	return &Error{
		Code:    ErrCodeMalformedOption,
		Message: fmt.Sprintf("options must start with '-' or '--', got %q", token),
		Value:   token,
	}
}

func unknownOption(name string) *Error {
	return &Error{
		Code:      ErrCodeUnknownOption,
		Message:   fmt.Sprintf("unknown option %q", name),
		Parameter: name,
	}
}

func illegalBooleanCluster(short rune, parameter string) *Error {
	return &Error{
		Code:      ErrCodeIllegalBooleanCluster,
		Message:   fmt.Sprintf("option %q in a cluster resolves to %q, which is not a boolean flag", string(short), parameter),
		Parameter: parameter,
	}
}

func optionValueMissing(parameter string) *Error {
	return &Error{
		Code:      ErrCodeOptionValueMissing,
		Message:   fmt.Sprintf("option %q requires a value", parameter),
		Parameter: parameter,
	}
}

func missingRequiredOptions(names []string) *Error {
	return &Error{
		Code:    ErrCodeMissingRequiredOptions,
		Message: fmt.Sprintf("the following options are required: %s", strings.Join(names, ", ")),
		Missing: names,
	}
}

func tooFewArguments(needed, got int) *Error {
	return &Error{
		Code:    ErrCodeTooFewArguments,
		Message: fmt.Sprintf("%d arguments required, got only %d", needed, got),
	}
}

func tooManyArguments(got, most int) *Error {
	return &Error{
		Code:    ErrCodeTooManyArguments,
		Message: fmt.Sprintf("got %d arguments and expected at most %d", got, most),
	}
}
