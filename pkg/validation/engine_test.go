package validation

import (
	"strings"
	"testing"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

func checkOne(t *testing.T, v settings.Variable, value any, rule settings.Rule) []string {
	t.Helper()
	return NewEngine().Check(&v, value, rule)
}

func TestKnowsBaseAndExtendedRules(t *testing.T) {
	e := NewEngine()
	for _, name := range []string{
		settings.RulePresence, settings.RuleLength, settings.RuleFormat, settings.RuleInclusion,
		RuleGreaterThan, RuleGreaterThanOrEqual, RuleLessThan, RuleLessThanOrEqual,
		RuleOtherThan, RuleExclusion, RuleAbsence, RulePredicate,
	} {
		if !e.Knows(name) {
			t.Errorf("Knows(%q) = false, want true", name)
		}
	}
	if e.Knows("no_such_rule") {
		t.Error("Knows(no_such_rule) = true, want false")
	}
}

func TestBaseRuleMessagesMatchBuiltin(t *testing.T) {
	v := settings.Variable{Name: "api_key", Type: settings.TypeString}

	tests := []struct {
		name  string
		value any
		rule  settings.Rule
		want  string
	}{
		{"presence", "", settings.Presence(), "Api Key can't be blank"},
		{"too short", "ab", settings.Length(5, -1), "Api Key is too short (minimum is 5 characters)"},
		{"too long", "abcdef", settings.Length(-1, 3), "Api Key is too long (maximum is 3 characters)"},
		{"format", "BAD", settings.Format("^[a-z]+$", ""), "Api Key is invalid"},
		{"inclusion", "x", settings.Inclusion("a", "b"), "Api Key is not included in the list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkOne(t, v, tt.value, tt.rule)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Check = %v, want [%s]", got, tt.want)
			}
		})
	}
}

func TestBaseRulesPassValidValues(t *testing.T) {
	v := settings.Variable{Name: "api_key", Type: settings.TypeString}

	tests := []struct {
		name  string
		value any
		rule  settings.Rule
	}{
		{"presence", "filled", settings.Presence()},
		{"length", "abcd", settings.LengthRange(2, 6)},
		{"format", "good", settings.Format("^[a-z]+$", "")},
		{"inclusion", "a", settings.Inclusion("a", "b")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkOne(t, v, tt.value, tt.rule); got != nil {
				t.Errorf("Check = %v, want nil", got)
			}
		})
	}
}

func TestLengthRangeFromManifestShape(t *testing.T) {
	v := settings.Variable{Name: "username", Type: settings.TypeString}
	rule := settings.RuleNamed(settings.RuleLength, map[string]any{"range": []any{3, 20}})

	got := checkOne(t, v, "ab", rule)
	if len(got) != 1 || got[0] != "Username is too short (minimum is 3 characters)" {
		t.Errorf("Check = %v, want the minimum violation", got)
	}
	if got := checkOne(t, v, "abcd", rule); got != nil {
		t.Errorf("Check = %v, want nil", got)
	}
}

func TestManifestShapedLengthRangeEnforcedBySet(t *testing.T) {
	r := settings.New(settings.WithRuleEngine(NewEngine()))
	err := r.Declare(settings.Variable{
		Name: "username", Type: settings.TypeString,
		Rules: []settings.Rule{
			settings.RuleNamed(settings.RuleLength, map[string]any{"range": []any{3, 20}}),
		},
	})
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}

	err = r.Set("username", "ab")
	if err == nil {
		t.Fatal("Set of a two-character value passed a 3..20 length range")
	}
	if !strings.Contains(err.Error(), "too short (minimum is 3 characters)") {
		t.Errorf("Set error = %v, want the minimum violation", err)
	}
}

func TestPredicateDeclarationRequiresFunc(t *testing.T) {
	r := settings.New(settings.WithRuleEngine(NewEngine()))

	err := r.Declare(settings.Variable{
		Name: "worker_count", Type: settings.TypeInteger,
		Rules: []settings.Rule{
			settings.RuleNamed(RulePredicate, map[string]any{"check": "is_even"}),
		},
	})
	if err == nil {
		t.Fatal("Declare accepted a predicate rule without a check function")
	}

	err = r.Declare(settings.Variable{
		Name: "worker_count", Type: settings.TypeInteger,
		Rules: []settings.Rule{
			Predicate(func(any) string { return "" }),
		},
	})
	if err != nil {
		t.Fatalf("Declare with a func predicate: %v", err)
	}
}

func TestComparisonRules(t *testing.T) {
	v := settings.Variable{Name: "retry_limit", Type: settings.TypeInteger}

	tests := []struct {
		name  string
		value any
		rule  settings.Rule
		want  string
	}{
		{"gt fails on equal", int64(5), GreaterThan(5), "Retry Limit must be greater than 5"},
		{"gt passes", int64(6), GreaterThan(5), ""},
		{"gte fails below", int64(4), GreaterThanOrEqual(5), "Retry Limit must be greater than or equal to 5"},
		{"gte passes on equal", int64(5), GreaterThanOrEqual(5), ""},
		{"lt fails on equal", int64(5), LessThan(5), "Retry Limit must be less than 5"},
		{"lt passes", int64(4), LessThan(5), ""},
		{"lte fails above", int64(6), LessThanOrEqual(5), "Retry Limit must be less than or equal to 5"},
		{"lte passes on equal", int64(5), LessThanOrEqual(5), ""},
		{"ne fails on equal", int64(5), OtherThan(5), "Retry Limit must be other than 5"},
		{"ne passes", int64(4), OtherThan(5), ""},
		{"non-numeric value", "abc", GreaterThan(5), "Retry Limit is not a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkOne(t, v, tt.value, tt.rule)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Check = %v, want nil", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Check = %v, want [%s]", got, tt.want)
			}
		})
	}
}

func TestExclusionRule(t *testing.T) {
	v := settings.Variable{Name: "username", Type: settings.TypeString}

	got := checkOne(t, v, "admin", Exclusion("admin", "root"))
	if len(got) != 1 || got[0] != "Username is reserved" {
		t.Errorf("Check = %v, want [Username is reserved]", got)
	}
	if got := checkOne(t, v, "alice", Exclusion("admin", "root")); got != nil {
		t.Errorf("Check = %v, want nil", got)
	}
}

func TestAbsenceRule(t *testing.T) {
	v := settings.Variable{Name: "legacy_token", Type: settings.TypeString}

	got := checkOne(t, v, "still-here", Absence())
	if len(got) != 1 || got[0] != "Legacy Token must be blank" {
		t.Errorf("Check = %v, want [Legacy Token must be blank]", got)
	}
	if got := checkOne(t, v, "", Absence()); got != nil {
		t.Errorf("Check = %v, want nil", got)
	}
}

func TestPredicateRule(t *testing.T) {
	v := settings.Variable{Name: "worker_count", Type: settings.TypeInteger}

	even := Predicate(func(value any) string {
		n, ok := value.(int64)
		if !ok || n%2 != 0 {
			return "must be an even number"
		}
		return ""
	})

	got := checkOne(t, v, int64(3), even)
	if len(got) != 1 || got[0] != "Worker Count must be an even number" {
		t.Errorf("Check = %v", got)
	}
	if got := checkOne(t, v, int64(4), even); got != nil {
		t.Errorf("Check = %v, want nil", got)
	}
}

func TestEngineWiredIntoRegistry(t *testing.T) {
	r := settings.New(settings.WithRuleEngine(NewEngine()))

	err := r.Declare(settings.Variable{
		Name: "retry_limit", Type: settings.TypeInteger, Default: int64(3),
		Rules: []settings.Rule{
			settings.Presence(),
			GreaterThan(0),
			LessThanOrEqual(10),
		},
	})
	if err != nil {
		t.Fatalf("Declare with extended rules: %v", err)
	}

	t.Setenv("RETRY_LIMIT", "99")
	verr := r.ValidateAll()
	if verr == nil {
		t.Fatal("ValidateAll = nil, want a violation for 99 > 10")
	}
}
