package settings

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Leading-numeric prefixes accepted by the integer and float coercions.
var (
	leadingInt   = regexp.MustCompile(`^[+-]?[0-9]+`)
	leadingFloat = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`)
)

// Coerce converts a raw textual value into the shape implied by t. Coercion
// is total over any raw string: unparsable numeric input degrades to zero,
// malformed JSON degrades to the comma-split or empty-map fallback, and no
// input ever produces an error. Absence of a raw value is handled by the
// registry before coercion, never here.
func Coerce(t Type, raw string) any {
	switch t {
	case TypeString:
		return raw
	case TypeInteger:
		return coerceInt(raw)
	case TypeFloat:
		return coerceFloat(raw)
	case TypeBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	case TypeArray:
		return coerceArray(raw)
	case TypeMap:
		return coerceMap(raw)
	case TypeSymbol:
		return Symbol(raw)
	default:
		return raw
	}
}

func coerceInt(raw string) int64 {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func coerceFloat(raw string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// coerceArray tries a strict JSON array parse first, then falls back to
// splitting on commas with surrounding whitespace trimmed from each
// segment. An empty raw value yields an empty sequence.
func coerceArray(raw string) []any {
	if strings.TrimSpace(raw) == "" {
		return []any{}
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if arr, ok := parsed.([]any); ok {
			return arr
		}
	}
	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// coerceMap tries a strict JSON object parse; anything else yields an empty
// map. There is no comma-separated fallback for maps.
func coerceMap(raw string) map[string]any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		if m, ok := parsed.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// StringForm renders a typed value the way validation and presence checks
// see it. nil renders empty; an empty array or map also renders empty so
// presence checks treat them as blank.
func StringForm(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case Symbol:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = StringForm(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case map[string]any:
		if len(v) == 0 {
			return ""
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
