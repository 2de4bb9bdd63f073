package settings

import (
	"fmt"
	"os"
)

// Registry is the catalog of declared variables and the entry point for
// get, set, validate and enumerate operations.
//
// Declare every variable at startup, before concurrent access begins;
// Declare, SetDefaultReader and SetDefaultWriter are not synchronized.
// Get, Set, ValidateAll and Enumerate only read the catalog and may be
// called concurrently once declaration is done. Concurrent Set calls on
// the same variable carry no atomicity guarantee beyond what the backend
// provides.
type Registry struct {
	specs map[string]*Variable
	order []string

	defaultReader ReaderFunc
	defaultWriter WriterFunc

	builtin  builtinEngine
	extended RuleEngine
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithRuleEngine wires an external rule engine. For any rule name the
// engine recognizes its messages replace the built-in ones verbatim, and
// Declare accepts the extended rule names it knows.
func WithRuleEngine(e RuleEngine) Option {
	return func(r *Registry) { r.extended = e }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{specs: make(map[string]*Variable)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetDefaultReader installs the registry-wide fallback reader, consulted
// for variables without their own reader. Last call wins; there is no
// removal.
func (r *Registry) SetDefaultReader(f ReaderFunc) {
	r.defaultReader = f
}

// SetDefaultWriter installs the registry-wide fallback writer. Last call
// wins; there is no removal.
func (r *Registry) SetDefaultWriter(f WriterFunc) {
	r.defaultWriter = f
}

// Declare registers or replaces a variable. Redeclaring a name overwrites
// the earlier entry (last declaration wins) but keeps its original
// enumeration position. Every rule name must be recognized by the built-in
// engine or the wired external engine; unknown names are rejected here
// rather than silently skipped later.
//
// The default value is not checked against the declared type; it is
// returned untouched on absent reads and must already match.
func (r *Registry) Declare(v Variable) error {
	if v.Name == "" {
		return ErrInvalidName
	}
	for _, rule := range v.Rules {
		if !r.knowsRule(rule.Name) {
			return fmt.Errorf("%w: %q on variable %q", ErrUnknownRule, rule.Name, v.Name)
		}
		if err := r.vetRule(rule); err != nil {
			return fmt.Errorf("rule %q on variable %q: %w", rule.Name, v.Name, err)
		}
	}
	if _, exists := r.specs[v.Name]; !exists {
		r.order = append(r.order, v.Name)
	}
	spec := v
	r.specs[v.Name] = &spec
	return nil
}

// MustDeclare declares a variable and panics on error. Useful for built-in
// declarations at program start.
func (r *Registry) MustDeclare(v Variable) {
	if err := r.Declare(v); err != nil {
		panic(err)
	}
}

func (r *Registry) knowsRule(name string) bool {
	if r.extended != nil && r.extended.Knows(name) {
		return true
	}
	return r.builtin.Knows(name)
}

// vetRule gives the engine that will evaluate the rule a chance to reject
// unusable parameters at declaration time.
func (r *Registry) vetRule(rule Rule) error {
	if r.extended == nil || !r.extended.Knows(rule.Name) {
		return nil
	}
	if vetter, ok := r.extended.(RuleVetter); ok {
		return vetter.Vet(rule)
	}
	return nil
}

// Lookup returns the declared variable for name, or nil.
func (r *Registry) Lookup(name string) *Variable {
	return r.specs[name]
}

// Names returns the declared variable names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get resolves and coerces the current value of name.
//
// Exactly one reader is consulted: the variable's own reader when present,
// otherwise the registry default reader, otherwise the process
// environment. When the consulted source yields no value the declared
// default is returned untouched; there is no fallthrough from an absent
// per-variable read to the default reader.
func (r *Registry) Get(name string) (any, error) {
	v, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	raw, present, err := r.read(v)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	if !present {
		return v.Default, nil
	}
	return Coerce(v.Type, raw), nil
}

func (r *Registry) read(v *Variable) (string, bool, error) {
	key := v.StorageKey()
	if v.Reader != nil {
		return v.Reader(key, v)
	}
	if r.defaultReader != nil {
		return r.defaultReader(key, v)
	}
	raw, ok := os.LookupEnv(key)
	return raw, ok, nil
}

// Set validates value against the variable's rules and hands it to the
// resolved writer. A validation failure aborts the write with no side
// effect; the writer never observes an invalid value. When neither the
// variable nor the registry has a writer the write fails with ErrReadOnly.
func (r *Registry) Set(name string, value any) error {
	v, ok := r.specs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	if violations := r.check(v, value); len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	key := v.StorageKey()
	switch {
	case v.Writer != nil:
		return v.Writer(key, value, v)
	case r.defaultWriter != nil:
		return r.defaultWriter(key, value, v)
	default:
		return readOnlyError(name)
	}
}

// check runs every declared rule in order and collects all violations.
func (r *Registry) check(v *Variable, value any) []string {
	var out []string
	for _, rule := range v.Rules {
		if r.extended != nil && r.extended.Knows(rule.Name) {
			out = append(out, r.extended.Check(v, value, rule)...)
			continue
		}
		out = append(out, r.builtin.Check(v, value, rule)...)
	}
	return out
}

// ValidateAll evaluates every declared variable with rules against its
// currently resolved value, in declaration order, and aggregates every
// violation into one ValidationError. Intended to run at startup so
// configuration errors surface before the rest of the application.
func (r *Registry) ValidateAll() error {
	var all []string
	for _, name := range r.order {
		v := r.specs[name]
		if len(v.Rules) == 0 {
			continue
		}
		value, err := r.Get(name)
		if err != nil {
			return err
		}
		all = append(all, r.check(v, value)...)
	}
	if len(all) > 0 {
		return &ValidationError{Violations: all}
	}
	return nil
}

// Enumerate resolves every declared variable and returns a name-to-value
// snapshot. Entries are resolved independently; the snapshot as a whole is
// not transactionally consistent.
func (r *Registry) Enumerate() (map[string]any, error) {
	out := make(map[string]any, len(r.order))
	for _, name := range r.order {
		value, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}

// IsPresent reports whether the resolved value of name is non-nil with a
// non-empty string form.
func (r *Registry) IsPresent(name string) (bool, error) {
	value, err := r.Get(name)
	if err != nil {
		return false, err
	}
	return value != nil && StringForm(value) != "", nil
}
