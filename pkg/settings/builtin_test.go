package settings

import "testing"

func checkOne(t *testing.T, v Variable, value any, rule Rule) []string {
	t.Helper()
	var e builtinEngine
	return e.Check(&v, value, rule)
}

func TestPresenceRule(t *testing.T) {
	v := Variable{Name: "api_key", Type: TypeString}

	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"nil", nil, 1},
		{"empty string", "", 1},
		{"empty array", []any{}, 1},
		{"empty map", map[string]any{}, 1},
		{"filled", "secret", 0},
		{"zero is present", int64(0), 0},
		{"false is present", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkOne(t, v, tt.value, Presence())
			if len(got) != tt.want {
				t.Errorf("presence(%#v) = %v, want %d violation(s)", tt.value, got, tt.want)
			}
		})
	}

	got := checkOne(t, v, nil, Presence())
	if want := "Api Key can't be blank"; got[0] != want {
		t.Errorf("message = %q, want %q", got[0], want)
	}
}

func TestLengthRule(t *testing.T) {
	v := Variable{Name: "token", Type: TypeString}

	tests := []struct {
		name  string
		value any
		rule  Rule
		want  []string
	}{
		{"too short", "abc", Length(5, -1), []string{"Token is too short (minimum is 5 characters)"}},
		{"too long", "abcdef", Length(-1, 4), []string{"Token is too long (maximum is 4 characters)"}},
		{"in range", "abcd", LengthRange(2, 6), nil},
		{"below range", "a", LengthRange(2, 6), []string{"Token is too short (minimum is 2 characters)"}},
		{"exact minimum", "abcde", Length(5, -1), nil},
		{"counts runes not bytes", "héllo", Length(5, 5), nil},
		{
			// A YAML manifest delivers the range as a plain slice.
			"manifest-shaped range too short", "ab",
			Rule{Name: RuleLength, Params: map[string]any{"range": []any{3, 20}}},
			[]string{"Token is too short (minimum is 3 characters)"},
		},
		{
			"manifest-shaped range in bounds", "abcd",
			Rule{Name: RuleLength, Params: map[string]any{"range": []any{3, 20}}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkOne(t, v, tt.value, tt.rule)
			if len(got) != len(tt.want) {
				t.Fatalf("length(%v) = %v, want %v", tt.value, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("message = %q, want %q", got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatRule(t *testing.T) {
	v := Variable{Name: "host", Type: TypeString}

	t.Run("match passes", func(t *testing.T) {
		if got := checkOne(t, v, "example.com", Format(`^[a-z.]+$`, "")); got != nil {
			t.Errorf("format = %v, want nil", got)
		}
	})
	t.Run("default message", func(t *testing.T) {
		got := checkOne(t, v, "BAD!", Format(`^[a-z.]+$`, ""))
		if len(got) != 1 || got[0] != "Host is invalid" {
			t.Errorf("format = %v, want [Host is invalid]", got)
		}
	})
	t.Run("custom message", func(t *testing.T) {
		got := checkOne(t, v, "BAD!", Format(`^[a-z.]+$`, "must be a lowercase hostname"))
		if len(got) != 1 || got[0] != "Host must be a lowercase hostname" {
			t.Errorf("format = %v", got)
		}
	})
	t.Run("bad pattern reports instead of panicking", func(t *testing.T) {
		got := checkOne(t, v, "x", Format(`[`, ""))
		if len(got) != 1 {
			t.Errorf("format with bad pattern = %v, want one violation", got)
		}
	})
}

func TestInclusionRule(t *testing.T) {
	v := Variable{Name: "log_level", Type: TypeString}

	t.Run("member passes", func(t *testing.T) {
		if got := checkOne(t, v, "info", Inclusion("debug", "info", "warn")); got != nil {
			t.Errorf("inclusion = %v, want nil", got)
		}
	})
	t.Run("non-member fails", func(t *testing.T) {
		got := checkOne(t, v, "trace", Inclusion("debug", "info", "warn"))
		if len(got) != 1 || got[0] != "Log Level is not included in the list" {
			t.Errorf("inclusion = %v", got)
		}
	})
	t.Run("numeric members match across int widths", func(t *testing.T) {
		p := Variable{Name: "port", Type: TypeInteger}
		if got := checkOne(t, p, int64(443), Inclusion(80, 443)); got != nil {
			t.Errorf("inclusion = %v, want nil", got)
		}
	})
}
