// Package registry maps command names to signatures and binding
// strategies, resolves which command an argument vector addresses, and
// routes help requests. A Registry is populated once during program
// start-up and treated as read-only from the first Dispatch on; it is not
// safe for concurrent registration.
package registry

import (
	"github.com/argbind/argbind/pkg/bind"
	"github.com/argbind/argbind/pkg/signature"
	"github.com/argbind/argbind/pkg/usage"
)

// Func is the callable shape commands are registered with. It receives
// the bound positional list and named map; parameters in neither were
// omitted on the command line and should fall back to the command's own
// defaults.
type Func func(pos []any, named map[string]any) error

// Entry pairs one signature with one binding strategy under one command
// name. Entries are immutable after registration and live for the
// process's lifetime.
type Entry struct {
	name string
	sig  *signature.Signature
	kind bind.Kind
	doc  string
	fn   Func
}

// Name returns the command name.
func (e *Entry) Name() string { return e.name }

// Signature returns the command's signature descriptor.
func (e *Entry) Signature() *signature.Signature { return e.sig }

// Kind returns the command's binding strategy.
func (e *Entry) Kind() bind.Kind { return e.kind }

// Doc returns the command's help text.
func (e *Entry) Doc() string { return e.doc }

// Invoke calls the registered function with bound arguments.
func (e *Entry) Invoke(pos []any, named map[string]any) error {
	return e.fn(pos, named)
}

func (e *Entry) usageInfo(named bool) usage.CommandInfo {
	info := usage.CommandInfo{
		Signature: e.sig,
		Kind:      e.kind,
		Doc:       e.doc,
	}
	if named {
		info.Name = e.name
	}
	return info
}

// Option configures a Registry.
type Option func(*Registry)

// WithDefaultCaster sets the caster applied to parameters registered
// without one. The default is signature.String.
func WithDefaultCaster(c signature.Caster) Option {
	return func(r *Registry) {
		r.defaultCast = c
	}
}

// Registry is an insertion-ordered command table. The zero value is not
// usable; construct one with New.
type Registry struct {
	entries     []*Entry
	byName      map[string]*Entry
	defaultCast signature.Caster
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		byName:      make(map[string]*Entry),
		defaultCast: signature.String,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPositional registers a command whose arguments are supplied by
// position only. Fails with a ConfigError when a required parameter
// follows a defaulted one.
func (r *Registry) RegisterPositional(name string, sig *signature.Signature, doc string, fn Func) error {
	return r.register(name, sig, bind.Positional, doc, fn)
}

// RegisterSwitch registers a command whose parameters are all supplied
// via options. Fails with a ConfigError when two parameter names share a
// first character.
func (r *Registry) RegisterSwitch(name string, sig *signature.Signature, doc string, fn Func) error {
	return r.register(name, sig, bind.Switch, doc, fn)
}

// RegisterHybrid registers a command accepting leading options followed
// by positional tokens. Fails with a ConfigError when two parameter names
// share a first character.
func (r *Registry) RegisterHybrid(name string, sig *signature.Signature, doc string, fn Func) error {
	return r.register(name, sig, bind.Hybrid, doc, fn)
}

func (r *Registry) register(name string, sig *signature.Signature, k bind.Kind, doc string, fn Func) error {
	if name == "" {
		return newError(ErrCodeInvalidCommand, name, "command name cannot be empty")
	}
	if _, ok := r.byName[name]; ok {
		return newError(ErrCodeDuplicateCommand, name, "command %q is already registered", name)
	}
	resolved, err := sig.WithDefaultCaster(r.defaultCast)
	if err != nil {
		return err
	}
	if k == bind.Positional {
		err = resolved.CheckPositionalOrder()
	} else {
		err = resolved.CheckShortFlags()
	}
	if err != nil {
		return err
	}
	e := &Entry{name: name, sig: resolved, kind: k, doc: doc, fn: fn}
	r.entries = append(r.entries, e)
	r.byName[name] = e
	return nil
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the registered commands in registration order.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup resolves a command name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}
