// Package bind turns raw argument tokens into typed call arguments. It
// implements the three binding conventions a command can be registered
// under: purely positional, purely switch-based, and a hybrid where
// leading flags may satisfy any parameter and the remaining tokens bind
// positionally against whatever is left.
//
// The strategy set is closed: Kind is an exhaustive enum and Bind is the
// single dispatch point over it. Binding is pure and synchronous; no
// strategy performs I/O or mutates the signature it consumes.
package bind

import (
	"fmt"
	"strings"

	"github.com/argbind/argbind/pkg/signature"
)

// Kind selects one of the three binding strategies.
type Kind int

const (
	// Positional binds every token by position, no flags.
	Positional Kind = iota

	// Switch binds every parameter via --name or -x options.
	Switch

	// Hybrid accepts leading options, then binds the remaining tokens
	// positionally against the parameters the options did not consume.
	Hybrid
)

// String returns the strategy name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Switch:
		return "switch"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result holds bound call arguments: an ordered positional list and a
// named map. A parameter appears in at most one of the two; parameters in
// neither were omitted so the callee's own default applies.
type Result struct {
	Positional []any
	Named      map[string]any
}

// Arguments flattens the result into a single name-to-value map. Named
// entries are copied as-is; positional values fill the remaining
// parameters in declaration order, which is exactly the order they were
// bound in. Parameters bound by neither are absent from the map.
func (r *Result) Arguments(sig *signature.Signature) map[string]any {
	out := make(map[string]any, len(r.Named)+len(r.Positional))
	for name, v := range r.Named {
		out[name] = v
	}
	i := 0
	for _, p := range sig.Parameters() {
		if i >= len(r.Positional) {
			break
		}
		if _, ok := out[p.Name()]; ok {
			continue
		}
		out[p.Name()] = r.Positional[i]
		i++
	}
	return out
}

// Bind applies the strategy k to the tokens against sig. On failure the
// returned error is a *Error carrying one of the ARG_* codes; no partial
// result is ever returned.
func Bind(k Kind, sig *signature.Signature, tokens []string) (*Result, error) {
	switch k {
	case Positional:
		return bindPositional(sig, tokens)
	case Switch:
		return bindSwitch(sig, tokens)
	case Hybrid:
		return bindHybrid(sig, tokens)
	default:
		return nil, fmt.Errorf("bind: unknown strategy %v", k)
	}
}

// ParamsRepr renders the parameter portion of a usage line for sig under
// strategy k. Switch and hybrid commands render identically.
func ParamsRepr(k Kind, sig *signature.Signature) string {
	if k == Positional {
		return positionalRepr(sig)
	}
	return switchRepr(sig)
}

func positionalRepr(sig *signature.Signature) string {
	var parts []string
	for _, p := range sig.Required() {
		parts = append(parts, p.Name())
	}
	for _, p := range sig.Optional() {
		parts = append(parts, "["+p.Name()+"]")
	}
	return strings.Join(parts, " ")
}

func switchRepr(sig *signature.Signature) string {
	var parts []string
	for _, p := range sig.Required() {
		parts = append(parts, fmt.Sprintf("-%c %s", p.Short(), p.Name()))
	}
	for _, p := range sig.Optional() {
		if p.Boolean() {
			continue
		}
		parts = append(parts, fmt.Sprintf("[-%c %s]", p.Short(), p.Name()))
	}
	for _, p := range sig.Booleans() {
		parts = append(parts, fmt.Sprintf("[-%c]", p.Short()))
	}
	return strings.Join(parts, " ")
}
