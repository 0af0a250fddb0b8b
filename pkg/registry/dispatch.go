package registry

import (
	"path/filepath"

	"github.com/argbind/argbind/pkg/bind"
	"github.com/argbind/argbind/pkg/usage"
)

// helpTokens are the exact, case-sensitive tokens that request usage text
// instead of a binding.
var helpTokens = map[string]struct{}{
	"-h":     {},
	"--help": {},
	"/?":     {},
	"?":      {},
	"-?":     {},
}

// IsHelpToken reports whether tok is a member of the help token set.
func IsHelpToken(tok string) bool {
	_, ok := helpTokens[tok]
	return ok
}

// Invocation is the outcome of a successful dispatch: the resolved
// command and its fully bound arguments. Dispatch never invokes the
// command itself; that stays with the caller.
type Invocation struct {
	Entry      *Entry
	Positional []any
	Named      map[string]any
}

// Arguments flattens the bound arguments into a single name-to-value map.
func (inv *Invocation) Arguments() map[string]any {
	res := bind.Result{Positional: inv.Positional, Named: inv.Named}
	return res.Arguments(inv.Entry.sig)
}

// Dispatch resolves which command argv addresses and binds its arguments.
// argv[0] is the program name; it is used only for usage text. With a
// single registered command every following token is forwarded to its
// strategy; with several, the first token must be a help token or an
// exact command name. A help request returns *HelpRequested, which
// callers should treat as success.
func (r *Registry) Dispatch(argv []string) (*Invocation, error) {
	if len(r.entries) == 0 {
		return nil, newError(ErrCodeNoCommands, "", "no commands were registered")
	}

	program := ""
	var tokens []string
	if len(argv) > 0 {
		program = filepath.Base(argv[0])
		tokens = argv[1:]
	}

	if len(r.entries) == 1 {
		e := r.entries[0]
		if len(tokens) > 0 && IsHelpToken(tokens[0]) {
			return nil, &HelpRequested{Text: usage.Command(program, e.usageInfo(false))}
		}
		return r.bindEntry(e, tokens)
	}

	if len(tokens) == 0 {
		return nil, &HelpRequested{Text: usage.Listing(program, r.usageInfos())}
	}
	first := tokens[0]
	if IsHelpToken(first) {
		if len(tokens) > 1 {
			if e, ok := r.byName[tokens[1]]; ok {
				return nil, &HelpRequested{Text: usage.Command(program, e.usageInfo(true))}
			}
		}
		return nil, &HelpRequested{Text: usage.Listing(program, r.usageInfos())}
	}
	e, ok := r.byName[first]
	if !ok {
		return nil, newError(ErrCodeUnknownCommand, first, "unknown command %q", first)
	}
	return r.bindEntry(e, tokens[1:])
}

func (r *Registry) bindEntry(e *Entry, tokens []string) (*Invocation, error) {
	res, err := bind.Bind(e.kind, e.sig, tokens)
	if err != nil {
		return nil, err
	}
	return &Invocation{Entry: e, Positional: res.Positional, Named: res.Named}, nil
}

func (r *Registry) usageInfos() []usage.CommandInfo {
	infos := make([]usage.CommandInfo, len(r.entries))
	for i, e := range r.entries {
		infos[i] = e.usageInfo(true)
	}
	return infos
}
