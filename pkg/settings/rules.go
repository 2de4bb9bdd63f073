package settings

// Rule is one named validation rule with its structured parameters. A
// variable's rules are evaluated in declaration order, and every applicable
// rule contributes its violations; there is no short-circuit on first
// failure.
type Rule struct {
	Name   string
	Params map[string]any
}

// Rule names understood by the built-in engine.
const (
	RulePresence  = "presence"
	RuleLength    = "length"
	RuleFormat    = "format"
	RuleInclusion = "inclusion"
)

// Presence requires a non-blank value: non-nil with a non-empty string
// form.
func Presence() Rule {
	return Rule{Name: RulePresence}
}

// Length bounds the string-form length of the value. A negative bound is
// left unset.
func Length(min, max int) Rule {
	p := map[string]any{}
	if min >= 0 {
		p["minimum"] = min
	}
	if max >= 0 {
		p["maximum"] = max
	}
	return Rule{Name: RuleLength, Params: p}
}

// LengthRange bounds the string-form length to an inclusive range, in place
// of separate minimum/maximum bounds.
func LengthRange(lo, hi int) Rule {
	return Rule{Name: RuleLength, Params: map[string]any{"range": [2]int{lo, hi}}}
}

// Format requires the string form to match pattern. message overrides the
// default "is invalid" phrase when non-empty.
func Format(pattern, message string) Rule {
	p := map[string]any{"pattern": pattern}
	if message != "" {
		p["message"] = message
	}
	return Rule{Name: RuleFormat, Params: p}
}

// Inclusion requires the value to be a member of set. Membership uses value
// equality, not string form.
func Inclusion(set ...any) Rule {
	return Rule{Name: RuleInclusion, Params: map[string]any{"in": set}}
}

// RuleNamed builds a rule for a name the built-in engine does not evaluate,
// for forwarding to an external engine (see pkg/validation). Declare
// rejects such rules unless an engine that knows the name is wired.
func RuleNamed(name string, params map[string]any) Rule {
	return Rule{Name: name, Params: params}
}

// RuleEngine evaluates validation rules against a resolved value.
//
// The registry always carries the built-in engine for the four base rules;
// an external engine wired with WithRuleEngine takes over any rule name it
// recognizes, and its messages are used verbatim.
type RuleEngine interface {
	// Knows reports whether the engine recognizes the rule name.
	Knows(name string) bool

	// Check evaluates one rule and returns zero or more human-readable
	// violation messages, each including the variable's display name.
	Check(v *Variable, value any, r Rule) []string
}

// RuleVetter is an optional interface for rule engines that can reject
// unusable rule parameters at declaration time, so a rule the engine could
// never evaluate fails at Declare rather than silently passing later.
type RuleVetter interface {
	Vet(r Rule) error
}
