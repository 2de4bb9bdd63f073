package settings

import (
	"fmt"
	"strings"
	"unicode"
)

// Type is the declared data type of a variable. It is fixed at declaration
// and never inferred from a stored value.
type Type uint8

const (
	// TypeString keeps the raw text unchanged.
	TypeString Type = iota
	// TypeInteger parses a leading decimal integer, zero on failure.
	TypeInteger
	// TypeFloat parses a leading decimal number, zero on failure.
	TypeFloat
	// TypeBool is true only for "true", "1", "yes", "on" (case-insensitive).
	TypeBool
	// TypeArray parses a JSON array, falling back to comma splitting.
	TypeArray
	// TypeMap parses a JSON object, falling back to an empty map.
	TypeMap
	// TypeSymbol interns the raw text as a Symbol token.
	TypeSymbol
)

// String returns the textual type name used in manifests and messages.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "boolean"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// ParseType maps a textual type name to a Type.
// Returns ErrInvalidType for unrecognized names.
func ParseType(s string) (Type, error) {
	switch s {
	case "string":
		return TypeString, nil
	case "integer", "int":
		return TypeInteger, nil
	case "float", "number":
		return TypeFloat, nil
	case "boolean", "bool":
		return TypeBool, nil
	case "array":
		return TypeArray, nil
	case "map":
		return TypeMap, nil
	case "symbol":
		return TypeSymbol, nil
	default:
		return TypeString, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Symbol is an interned atomic name token, the typed value of TypeSymbol
// variables.
type Symbol string

// ReaderFunc retrieves the raw textual value stored under key. ok reports
// whether the backend holds a value; absence is not an error. Readers must
// not mutate v.
type ReaderFunc func(key string, v *Variable) (raw string, ok bool, err error)

// WriterFunc persists a typed value under key. The value has already passed
// validation when a writer is invoked.
type WriterFunc func(key string, value any, v *Variable) error

// Variable declares one named, typed configuration entry.
type Variable struct {
	// Name is the identifier, unique within a registry. Redeclaring a name
	// replaces the earlier entry.
	Name string

	// Type is the declared data type, fixed for the variable's lifetime.
	Type Type

	// Default is returned when no backend yields a value. It is never
	// re-coerced; it must already match the declared type.
	Default any

	// Rules are evaluated in order on Set and ValidateAll.
	Rules []Rule

	// Reader overrides the registry default reader for this variable.
	// When present it is the only reader consulted; an absent result does
	// not fall through to the registry default.
	Reader ReaderFunc

	// Writer overrides the registry default writer for this variable.
	Writer WriterFunc
}

// StorageKey is the backend lookup key: the uppercased variable name.
func (v *Variable) StorageKey() string {
	return strings.ToUpper(v.Name)
}

// DisplayName converts the snake_case name to space-separated capitalized
// words for validation messages ("allowed_hosts" becomes "Allowed Hosts").
func (v *Variable) DisplayName() string {
	parts := strings.Split(v.Name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
