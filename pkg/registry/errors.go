package registry

import (
	"errors"
	"fmt"
)

// Dispatch-level error codes.
const (
	// ErrCodeNoCommands indicates a dispatch against an empty registry.
	ErrCodeNoCommands = "REG_NO_COMMANDS"

	// ErrCodeUnknownCommand indicates a first token that names no
	// registered command.
	ErrCodeUnknownCommand = "REG_UNKNOWN_COMMAND"

	// ErrCodeDuplicateCommand indicates a second registration under an
	// already-taken command name.
	ErrCodeDuplicateCommand = "REG_DUPLICATE_COMMAND"

	// ErrCodeInvalidCommand indicates a registration under an empty name.
	ErrCodeInvalidCommand = "REG_INVALID_COMMAND"
)

// Error is a registry-level failure with a REG_* code. Name carries the
// offending command name where one exists.
type Error struct {
	// Code is one of the REG_* error codes.
	Code string

	// Message is a human-readable description.
	Message string

	// Name is the command name the failure concerns, if any.
	Name string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches two registry errors by code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// AsError checks if err is a registry Error and returns it if so.
func AsError(err error) (*Error, bool) {
	var regErr *Error
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}

func newError(code, name, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Name:    name,
	}
}

// HelpRequested is the control signal returned from Dispatch when the
// argument vector asked for help. It satisfies the error interface so it
// travels the same path as real failures, but callers should treat it as
// success: Text is the fully rendered usage output.
type HelpRequested struct {
	Text string
}

// Error implements the error interface.
func (h *HelpRequested) Error() string {
	return h.Text
}

// AsHelp checks if err is a HelpRequested signal and returns it if so.
func AsHelp(err error) (*HelpRequested, bool) {
	var help *HelpRequested
	if errors.As(err, &help) {
		return help, true
	}
	return nil, false
}
