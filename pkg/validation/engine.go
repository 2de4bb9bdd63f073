// Package validation adapts go-playground/validator/v10 as an external rule
// engine for the settings registry. When wired with
// settings.WithRuleEngine, it takes over every rule name it recognizes —
// the four base rules plus the extended comparison, exclusion, absence and
// predicate rules — and its messages are used verbatim.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

// Extended rule names evaluated by this engine.
const (
	RuleGreaterThan        = "greater_than"
	RuleGreaterThanOrEqual = "greater_than_or_equal_to"
	RuleLessThan           = "less_than"
	RuleLessThanOrEqual    = "less_than_or_equal_to"
	RuleOtherThan          = "other_than"
	RuleExclusion          = "exclusion"
	RuleAbsence            = "absence"
	RulePredicate          = "predicate"
)

// GreaterThan requires a numeric value strictly above n.
func GreaterThan(n float64) settings.Rule {
	return settings.RuleNamed(RuleGreaterThan, map[string]any{"value": n})
}

// GreaterThanOrEqual requires a numeric value of at least n.
func GreaterThanOrEqual(n float64) settings.Rule {
	return settings.RuleNamed(RuleGreaterThanOrEqual, map[string]any{"value": n})
}

// LessThan requires a numeric value strictly below n.
func LessThan(n float64) settings.Rule {
	return settings.RuleNamed(RuleLessThan, map[string]any{"value": n})
}

// LessThanOrEqual requires a numeric value of at most n.
func LessThanOrEqual(n float64) settings.Rule {
	return settings.RuleNamed(RuleLessThanOrEqual, map[string]any{"value": n})
}

// OtherThan requires a numeric value different from n.
func OtherThan(n float64) settings.Rule {
	return settings.RuleNamed(RuleOtherThan, map[string]any{"value": n})
}

// Exclusion rejects values that are members of set.
func Exclusion(set ...any) settings.Rule {
	return settings.RuleNamed(RuleExclusion, map[string]any{"from": set})
}

// Absence requires a blank value, the inverse of presence.
func Absence() settings.Rule {
	return settings.RuleNamed(RuleAbsence, nil)
}

// Predicate evaluates fn against the value. fn returns a violation phrase
// ("must be an even number") or the empty string when the value is valid;
// the engine prefixes the variable's display name.
func Predicate(fn func(value any) string) settings.Rule {
	return settings.RuleNamed(RulePredicate, map[string]any{"check": fn})
}

// Engine implements settings.RuleEngine on top of validator/v10.
type Engine struct {
	v *playground.Validate
}

// NewEngine creates the adapter around a fresh validator instance.
func NewEngine() *Engine {
	return &Engine{v: playground.New()}
}

// Vet rejects declarations this engine could never evaluate. A predicate
// rule needs a func check parameter, which a YAML manifest cannot carry, so
// a manifest predicate entry fails at Declare instead of passing everything.
func (e *Engine) Vet(r settings.Rule) error {
	if r.Name != RulePredicate {
		return nil
	}
	if _, ok := r.Params["check"].(func(value any) string); !ok {
		return errors.New("predicate rule requires a check function and cannot be declared from a manifest")
	}
	return nil
}

// Knows reports whether the engine evaluates the rule name.
func (e *Engine) Knows(name string) bool {
	switch name {
	case settings.RulePresence, settings.RuleLength, settings.RuleFormat, settings.RuleInclusion,
		RuleGreaterThan, RuleGreaterThanOrEqual, RuleLessThan, RuleLessThanOrEqual,
		RuleOtherThan, RuleExclusion, RuleAbsence, RulePredicate:
		return true
	default:
		return false
	}
}

// Check evaluates one rule and returns its violation messages.
func (e *Engine) Check(v *settings.Variable, value any, r settings.Rule) []string {
	switch r.Name {
	case settings.RulePresence:
		if err := e.v.Var(settings.StringForm(value), "required"); err != nil {
			return []string{v.DisplayName() + " can't be blank"}
		}
		return nil
	case settings.RuleLength:
		return e.checkLength(v, value, r)
	case settings.RuleFormat:
		return checkFormat(v, value, r)
	case settings.RuleInclusion:
		return checkMembership(v, value, r.Params, "in", false)
	case RuleGreaterThan:
		return e.checkComparison(v, value, r, "gt", "must be greater than")
	case RuleGreaterThanOrEqual:
		return e.checkComparison(v, value, r, "gte", "must be greater than or equal to")
	case RuleLessThan:
		return e.checkComparison(v, value, r, "lt", "must be less than")
	case RuleLessThanOrEqual:
		return e.checkComparison(v, value, r, "lte", "must be less than or equal to")
	case RuleOtherThan:
		return e.checkComparison(v, value, r, "ne", "must be other than")
	case RuleExclusion:
		return checkMembership(v, value, r.Params, "from", true)
	case RuleAbsence:
		if settings.StringForm(value) != "" {
			return []string{v.DisplayName() + " must be blank"}
		}
		return nil
	case RulePredicate:
		return checkPredicate(v, value, r)
	default:
		return nil
	}
}

func (e *Engine) checkLength(v *settings.Variable, value any, r settings.Rule) []string {
	min, hasMin := intParam(r.Params, "minimum")
	max, hasMax := intParam(r.Params, "maximum")
	if lo, hi, ok := rangeParam(r.Params); ok {
		min, max = lo, hi
		hasMin, hasMax = true, true
	}

	var tags []string
	if hasMin {
		tags = append(tags, fmt.Sprintf("min=%d", min))
	}
	if hasMax {
		tags = append(tags, fmt.Sprintf("max=%d", max))
	}
	if len(tags) == 0 {
		return nil
	}

	err := e.v.Var(settings.StringForm(value), strings.Join(tags, ","))
	if err == nil {
		return nil
	}
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{v.DisplayName() + " is the wrong length"}
	}
	var out []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "min":
			out = append(out, fmt.Sprintf("%s is too short (minimum is %d characters)", v.DisplayName(), min))
		case "max":
			out = append(out, fmt.Sprintf("%s is too long (maximum is %d characters)", v.DisplayName(), max))
		}
	}
	return out
}

func (e *Engine) checkComparison(v *settings.Variable, value any, r settings.Rule, tag, phrase string) []string {
	bound, ok := floatParam(r.Params, "value")
	if !ok {
		return nil
	}
	f, ok := toFloat64(value)
	if !ok {
		return []string{v.DisplayName() + " is not a number"}
	}
	if err := e.v.Var(f, fmt.Sprintf("%s=%v", tag, bound)); err != nil {
		return []string{fmt.Sprintf("%s %s %v", v.DisplayName(), phrase, bound)}
	}
	return nil
}

func checkFormat(v *settings.Variable, value any, r settings.Rule) []string {
	pattern, _ := r.Params["pattern"].(string)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return []string{v.DisplayName() + " has an unusable format pattern"}
	}
	if re.MatchString(settings.StringForm(value)) {
		return nil
	}
	msg, _ := r.Params["message"].(string)
	if msg == "" {
		msg = "is invalid"
	}
	return []string{v.DisplayName() + " " + msg}
}

// checkMembership handles both inclusion (value must be in the set) and
// exclusion (value must not be in the set).
func checkMembership(v *settings.Variable, value any, params map[string]any, key string, exclude bool) []string {
	set, _ := params[key].([]any)
	member := false
	for _, m := range set {
		if equalValues(m, value) {
			member = true
			break
		}
	}
	if exclude {
		if member {
			return []string{v.DisplayName() + " is reserved"}
		}
		return nil
	}
	if !member {
		return []string{v.DisplayName() + " is not included in the list"}
	}
	return nil
}

func checkPredicate(v *settings.Variable, value any, r settings.Rule) []string {
	fn, _ := r.Params["check"].(func(value any) string)
	if fn == nil {
		return nil
	}
	if phrase := fn(value); phrase != "" {
		return []string{v.DisplayName() + " " + phrase}
	}
	return nil
}

func equalValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	return aok && bok && af == bf
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func intParam(params map[string]any, key string) (int, bool) {
	return toInt(params[key])
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// rangeParam reads a length range parameter, tolerating the slice shapes a
// YAML or JSON manifest produces alongside the native [2]int form.
func rangeParam(params map[string]any) (int, int, bool) {
	switch rng := params["range"].(type) {
	case [2]int:
		return rng[0], rng[1], true
	case []int:
		if len(rng) == 2 {
			return rng[0], rng[1], true
		}
	case []any:
		if len(rng) == 2 {
			lo, lok := toInt(rng[0])
			hi, hok := toInt(rng[1])
			if lok && hok {
				return lo, hi, true
			}
		}
	}
	return 0, 0, false
}

func floatParam(params map[string]any, key string) (float64, bool) {
	return toFloat64(params[key])
}
