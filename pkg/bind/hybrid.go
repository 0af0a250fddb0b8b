package bind

import "github.com/argbind/argbind/pkg/signature"

// bindHybrid runs two explicit phases with no backtracking. Phase one
// scans leading option tokens exactly as the switch strategy does; it ends
// permanently at the first token that is not option-shaped. Phase two
// binds every remaining token positionally against the candidate list:
// the declared parameters not already bound in phase one (booleans are
// pre-bound false, so they are never positional candidates), preserving
// declaration order.
func bindHybrid(sig *signature.Signature, tokens []string) (*Result, error) {
	named, next, err := scanOptions(sig, tokens, true)
	if err != nil {
		return nil, err
	}
	rest := tokens[next:]

	var candidates []signature.Parameter
	for _, p := range sig.Parameters() {
		if _, ok := named[p.Name()]; !ok {
			candidates = append(candidates, p)
		}
	}

	needed := len(candidates)
	for _, p := range candidates {
		if p.HasDefault() {
			needed--
		}
	}
	if len(rest) < needed {
		return nil, tooFewArguments(needed, len(rest))
	}
	if len(rest) > len(candidates) {
		return nil, tooManyArguments(len(rest), len(candidates))
	}

	pos := make([]any, 0, len(rest))
	for i, tok := range rest {
		v, err := candidates[i].Cast(tok)
		if err != nil {
			return nil, castError(candidates[i].Name(), tok, err)
		}
		pos = append(pos, v)
	}
	return &Result{Positional: pos, Named: named}, nil
}
