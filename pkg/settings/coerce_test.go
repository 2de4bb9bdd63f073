package settings

import (
	"reflect"
	"testing"
)

func TestCoerceInteger(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"42", 42},
		{"-7", -7},
		{"+3", 3},
		{" 12 ", 12},
		{"42abc", 42},
		{"3.9", 3},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Coerce(TypeInteger, tt.raw)
			if got != tt.want {
				t.Errorf("Coerce(integer, %q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2.5", 2.5},
		{"-0.25", -0.25},
		{"1e3", 1000},
		{"7", 7},
		{"2.5xyz", 2.5},
		{"xyz", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Coerce(TypeFloat, tt.raw)
			if got != tt.want {
				t.Errorf("Coerce(float, %q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"anything", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Coerce(TypeBool, tt.raw)
			if got != tt.want {
				t.Errorf("Coerce(bool, %q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceArray(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []any
	}{
		{"json array", `["a","b"]`, []any{"a", "b"}},
		{"json mixed", `["a",1]`, []any{"a", float64(1)}},
		{"comma separated", "a, b ,c", []any{"a", "b", "c"}},
		{"single item", "solo", []any{"solo"}},
		{"empty", "", []any{}},
		{"whitespace only", "  ", []any{}},
		{"invalid json falls back to split", `["a",`, []any{`["a"`, ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(TypeArray, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce(array, %q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceMap(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{"json object", `{"k":"v"}`, map[string]any{"k": "v"}},
		{"nested", `{"a":{"b":1}}`, map[string]any{"a": map[string]any{"b": float64(1)}}},
		{"not an object", "plain", map[string]any{}},
		{"json array", `[1,2]`, map[string]any{}},
		{"empty", "", map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(TypeMap, tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Coerce(map, %q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceStringAndSymbol(t *testing.T) {
	if got := Coerce(TypeString, " keep me "); got != " keep me " {
		t.Errorf("string coercion altered the value: %q", got)
	}
	if got := Coerce(TypeSymbol, "fast"); got != Symbol("fast") {
		t.Errorf("Coerce(symbol, fast) = %#v, want Symbol(fast)", got)
	}
}

func TestStringForm(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "x", "x"},
		{"symbol", Symbol("fast"), "fast"},
		{"bool", true, "true"},
		{"int64", int64(9), "9"},
		{"float", 2.5, "2.5"},
		{"array", []any{"a", "b"}, "a,b"},
		{"empty array", []any{}, ""},
		{"string slice", []string{"x", "y"}, "x,y"},
		{"map", map[string]any{"k": "v"}, `{"k":"v"}`},
		{"empty map", map[string]any{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringForm(tt.value); got != tt.want {
				t.Errorf("StringForm(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
