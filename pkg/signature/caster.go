package signature

import (
	"reflect"
	"strconv"
	"time"
)

// Caster converts a raw command-line token into a typed value.
// A failed conversion is a recoverable error, never a fault; the binding
// layer wraps it with the parameter name and the offending token.
type Caster func(raw string) (any, error)

// String is the identity caster. It is also the caster applied to
// parameters registered without one, unless the registry is configured
// with a different default.
func String(raw string) (any, error) {
	return raw, nil
}

// Int parses a base-10 integer token.
func Int(raw string) (any, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Float64 parses a floating-point token.
func Float64(raw string) (any, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Duration parses a token in Go duration syntax, e.g. "250ms" or "1h30m".
func Duration(raw string) (any, error) {
	v, err := time.ParseDuration(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Bool is the reserved boolean sentinel caster. A parameter is a boolean
// flag if and only if its caster is this exact function; any other caster
// that happens to produce a bool is an ordinary value parameter. Boolean
// parameters take no value on the command line and bind false unless their
// flag is present.
func Bool(raw string) (any, error) {
	return true, nil
}

// IsBoolCaster reports whether c is the Bool sentinel.
func IsBoolCaster(c Caster) bool {
	if c == nil {
		return false
	}
	return reflect.ValueOf(c).Pointer() == reflect.ValueOf(Caster(Bool)).Pointer()
}
