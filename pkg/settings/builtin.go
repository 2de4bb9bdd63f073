package settings

import (
	"fmt"
	"reflect"
	"regexp"
)

// builtinEngine evaluates the four base rules: presence, length, format and
// inclusion. Messages follow the "<Display Name> <phrase>" convention.
type builtinEngine struct{}

func (builtinEngine) Knows(name string) bool {
	switch name {
	case RulePresence, RuleLength, RuleFormat, RuleInclusion:
		return true
	default:
		return false
	}
}

func (e builtinEngine) Check(v *Variable, value any, r Rule) []string {
	switch r.Name {
	case RulePresence:
		return e.checkPresence(v, value)
	case RuleLength:
		return e.checkLength(v, value, r)
	case RuleFormat:
		return e.checkFormat(v, value, r)
	case RuleInclusion:
		return e.checkInclusion(v, value, r)
	default:
		return nil
	}
}

func (builtinEngine) checkPresence(v *Variable, value any) []string {
	if value == nil || StringForm(value) == "" {
		return []string{v.DisplayName() + " can't be blank"}
	}
	return nil
}

func (builtinEngine) checkLength(v *Variable, value any, r Rule) []string {
	n := len([]rune(StringForm(value)))

	min, hasMin := intParam(r.Params, "minimum")
	max, hasMax := intParam(r.Params, "maximum")
	if lo, hi, ok := rangeParam(r.Params); ok {
		min, max = lo, hi
		hasMin, hasMax = true, true
	}

	var out []string
	if hasMin && n < min {
		out = append(out, fmt.Sprintf("%s is too short (minimum is %d characters)", v.DisplayName(), min))
	}
	if hasMax && n > max {
		out = append(out, fmt.Sprintf("%s is too long (maximum is %d characters)", v.DisplayName(), max))
	}
	return out
}

func (builtinEngine) checkFormat(v *Variable, value any, r Rule) []string {
	pattern, _ := r.Params["pattern"].(string)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return []string{v.DisplayName() + " has an unusable format pattern"}
	}
	if re.MatchString(StringForm(value)) {
		return nil
	}
	msg, _ := r.Params["message"].(string)
	if msg == "" {
		msg = "is invalid"
	}
	return []string{v.DisplayName() + " " + msg}
}

func (builtinEngine) checkInclusion(v *Variable, value any, r Rule) []string {
	set, _ := r.Params["in"].([]any)
	for _, member := range set {
		if equalValues(member, value) {
			return nil
		}
	}
	return []string{v.DisplayName() + " is not included in the list"}
}

// equalValues compares by deep equality, with numeric values compared by
// magnitude so Inclusion(3000) matches a coerced int64(3000).
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

// intParam reads an integer rule parameter, tolerating the numeric types a
// YAML or JSON manifest produces.
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
