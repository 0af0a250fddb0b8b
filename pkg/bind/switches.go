package bind

import (
	"strings"

	"github.com/argbind/argbind/pkg/signature"
)

// bindSwitch binds every parameter from --name, -x or clustered -xyz
// option tokens in a single left-to-right pass.
func bindSwitch(sig *signature.Signature, tokens []string) (*Result, error) {
	named, _, err := scanOptions(sig, tokens, false)
	if err != nil {
		return nil, err
	}
	if err := checkRequired(sig, named); err != nil {
		return nil, err
	}
	return &Result{Positional: []any{}, Named: named}, nil
}

// scanOptions is the option-scan phase shared by the switch and hybrid
// strategies. Booleans are pre-bound false. When stopAtNonOption is set,
// the scan ends at the first token that is not option-shaped (no leading
// hyphen, or a bare "-") and returns its index; otherwise such a token is
// a malformed-option failure. The scan never permutes: tokens after the
// stop point are untouched even if they look like options.
func scanOptions(sig *signature.Signature, tokens []string, stopAtNonOption bool) (map[string]any, int, error) {
	named := make(map[string]any)
	for _, p := range sig.Booleans() {
		named[p.Name()] = false
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok == "-" || !strings.HasPrefix(tok, "-") {
			if stopAtNonOption {
				return named, i, nil
			}
			return nil, i, malformedOption(tok)
		}

		var p signature.Parameter
		if strings.HasPrefix(tok, "--") {
			name := tok[2:]
			var ok bool
			p, ok = sig.Lookup(name)
			if !ok {
				return nil, i, unknownOption(name)
			}
		} else if shorts := []rune(tok[1:]); len(shorts) == 1 {
			var ok bool
			p, ok = sig.LookupShort(shorts[0])
			if !ok {
				return nil, i, unknownOption(string(shorts[0]))
			}
		} else {
			// Clustered short flags, e.g. -nh. Every member must be
			// a boolean.
			for _, short := range shorts {
				cp, ok := sig.LookupShort(short)
				if !ok {
					return nil, i, unknownOption(string(short))
				}
				if !cp.Boolean() {
					return nil, i, illegalBooleanCluster(short, cp.Name())
				}
				named[cp.Name()] = true
			}
			i++
			continue
		}

		if p.Boolean() {
			named[p.Name()] = true
			i++
			continue
		}
		if i+1 >= len(tokens) {
			return nil, i, optionValueMissing(p.Name())
		}
		v, err := p.Cast(tokens[i+1])
		if err != nil {
			return nil, i, castError(p.Name(), tokens[i+1], err)
		}
		named[p.Name()] = v
		i += 2
	}
	return named, len(tokens), nil
}

// checkRequired fails when any required, non-boolean parameter is absent
// from the bound map after a full scan.
func checkRequired(sig *signature.Signature, named map[string]any) error {
	var missing []string
	for _, p := range sig.Required() {
		if _, ok := named[p.Name()]; !ok {
			missing = append(missing, p.Name())
		}
	}
	if len(missing) > 0 {
		return missingRequiredOptions(missing)
	}
	return nil
}
