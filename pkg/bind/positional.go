package bind

import "github.com/argbind/argbind/pkg/signature"

// bindPositional matches tokens to parameters by position. Only declared
// defaults shrink the needed-token count; trailing defaulted parameters
// simply stay unbound so the callee's defaults apply.
func bindPositional(sig *signature.Signature, tokens []string) (*Result, error) {
	params := sig.Parameters()
	needed := len(params)
	for _, p := range params {
		if p.HasDefault() {
			needed--
		}
	}
	if len(tokens) < needed {
		return nil, tooFewArguments(needed, len(tokens))
	}
	if len(tokens) > len(params) {
		return nil, tooManyArguments(len(tokens), len(params))
	}
	pos := make([]any, 0, len(tokens))
	for i, tok := range tokens {
		v, err := params[i].Cast(tok)
		if err != nil {
			return nil, castError(params[i].Name(), tok, err)
		}
		pos = append(pos, v)
	}
	return &Result{Positional: pos, Named: map[string]any{}}, nil
}
