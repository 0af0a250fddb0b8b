// Package signature describes the parameters a command-line command
// accepts. A Signature is an ordered, immutable sequence of Parameters
// built explicitly by the caller; the binding strategies consume it to
// turn raw tokens into typed call arguments.
package signature

// Parameter is one declared parameter of a command. The zero value is not
// usable; construct one with Required, Optional or Flag.
type Parameter struct {
	name       string
	cast       Caster
	def        any
	hasDefault bool
	boolean    bool
}

// Required declares a parameter with no default value. A nil caster means
// "use the registry's configured default caster".
func Required(name string, cast Caster) Parameter {
	return Parameter{name: name, cast: cast}
}

// Optional declares a parameter with a default value. The default applies
// in the callee when the parameter is omitted; the binder itself never
// injects it into a bound result.
func Optional(name string, cast Caster, def any) Parameter {
	return Parameter{name: name, cast: cast, def: def, hasDefault: true}
}

// Flag declares a boolean parameter. Flags take no value on the command
// line and bind false unless present; a true default is not supported.
func Flag(name string) Parameter {
	return Parameter{name: name, cast: Bool}
}

// Name returns the parameter's identifier.
func (p Parameter) Name() string { return p.name }

// Short returns the parameter's derived single-letter flag, always the
// first character of its name.
func (p Parameter) Short() rune {
	for _, r := range p.name {
		return r
	}
	return 0
}

// HasDefault reports whether the parameter declared a default value.
func (p Parameter) HasDefault() bool { return p.hasDefault }

// Default returns the declared default value, valid only when HasDefault
// reports true.
func (p Parameter) Default() any { return p.def }

// Boolean reports whether the parameter's caster is the Bool sentinel.
func (p Parameter) Boolean() bool { return p.boolean }

// Cast converts a raw token with the parameter's caster. A parameter whose
// caster was never resolved behaves as a plain string parameter.
func (p Parameter) Cast(raw string) (any, error) {
	if p.cast == nil {
		return String(raw)
	}
	return p.cast(raw)
}

// Signature is an immutable, ordered parameter sequence with derived views
// cached at construction. Declaration order is semantically significant:
// positional binding matches tokens to parameters by it.
type Signature struct {
	params   []Parameter
	required []Parameter
	optional []Parameter
	booleans []Parameter
	byName   map[string]int
	byShort  map[rune]int
	// shortConflicts holds one message per colliding first character,
	// reported by CheckShortFlags.
	shortConflicts []string
}

// New builds a Signature from parameters in declaration order. It fails
// with a ConfigError on an empty or duplicate name, or on a boolean
// parameter defaulting to true. Strategy-specific rules (positional
// ordering, short-flag uniqueness) are checked separately at registration.
func New(params ...Parameter) (*Signature, error) {
	s := &Signature{
		params:  make([]Parameter, len(params)),
		byName:  make(map[string]int, len(params)),
		byShort: make(map[rune]int, len(params)),
	}
	for i, p := range params {
		if p.name == "" {
			return nil, newConfigError(ErrCodeEmptyName, "parameter %d has an empty name", i)
		}
		if _, ok := s.byName[p.name]; ok {
			return nil, newConfigError(ErrCodeDuplicateName, "parameter %q declared twice", p.name)
		}
		p.boolean = IsBoolCaster(p.cast)
		if p.boolean && p.hasDefault {
			if v, ok := p.def.(bool); ok && v {
				return nil, newConfigError(ErrCodeBooleanDefault,
					"boolean parameter %q cannot default to true", p.name)
			}
			// A false default is the boolean's implicit behavior anyway.
			p.def, p.hasDefault = nil, false
		}
		s.params[i] = p
		s.byName[p.name] = i
		if prev, ok := s.byShort[p.Short()]; ok {
			s.shortConflicts = append(s.shortConflicts,
				s.params[prev].name+" and "+p.name)
		} else {
			s.byShort[p.Short()] = i
		}
	}
	for _, p := range s.params {
		switch {
		case p.boolean:
			s.booleans = append(s.booleans, p)
			s.optional = append(s.optional, p)
		case p.hasDefault:
			s.optional = append(s.optional, p)
		default:
			s.required = append(s.required, p)
		}
	}
	return s, nil
}

// Len returns the number of declared parameters.
func (s *Signature) Len() int { return len(s.params) }

// Parameters returns the declared parameters in declaration order.
func (s *Signature) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	return out
}

// Required returns the parameters with no default that are not boolean,
// in declaration order.
func (s *Signature) Required() []Parameter {
	out := make([]Parameter, len(s.required))
	copy(out, s.required)
	return out
}

// Optional returns every defaulted or boolean parameter. The original
// model treats this as an unordered set; declaration order is kept here so
// rendered usage text is deterministic.
func (s *Signature) Optional() []Parameter {
	out := make([]Parameter, len(s.optional))
	copy(out, s.optional)
	return out
}

// Booleans returns the boolean parameters in declaration order.
func (s *Signature) Booleans() []Parameter {
	out := make([]Parameter, len(s.booleans))
	copy(out, s.booleans)
	return out
}

// Lookup resolves a full parameter name.
func (s *Signature) Lookup(name string) (Parameter, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// LookupShort resolves a single-letter short flag to its parameter.
func (s *Signature) LookupShort(short rune) (Parameter, bool) {
	i, ok := s.byShort[short]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// CheckPositionalOrder verifies that no required parameter follows a
// defaulted one, mirroring ordinary call-signature rules. The registry
// applies it to positional commands.
func (s *Signature) CheckPositionalOrder() error {
	seenDefault := ""
	for _, p := range s.params {
		if p.hasDefault {
			seenDefault = p.name
		} else if seenDefault != "" {
			return newConfigError(ErrCodeParameterOrder,
				"required parameter %q follows defaulted parameter %q", p.name, seenDefault)
		}
	}
	return nil
}

// CheckShortFlags verifies that every parameter's first character is
// unique, the precondition for deriving short flags. The registry applies
// it to switch and hybrid commands.
func (s *Signature) CheckShortFlags() error {
	if len(s.shortConflicts) > 0 {
		return newConfigError(ErrCodeShortFlagCollision,
			"parameters share a first letter: %s", s.shortConflicts[0])
	}
	return nil
}

// WithDefaultCaster returns a signature whose unresolved casters are
// replaced by c. The receiver is never mutated; when every caster is
// already resolved the receiver itself is returned.
func (s *Signature) WithDefaultCaster(c Caster) (*Signature, error) {
	unresolved := false
	for _, p := range s.params {
		if p.cast == nil {
			unresolved = true
			break
		}
	}
	if !unresolved || c == nil {
		return s, nil
	}
	params := s.Parameters()
	for i := range params {
		if params[i].cast == nil {
			params[i].cast = c
		}
	}
	return New(params...)
}
