// Package settings implements a declarative registry mapping named, typed
// configuration variables to pluggable storage backends.
//
// A variable is declared once with a name, a type, a default value, optional
// validation rules, and optional reader/writer callbacks. Reads resolve
// against exactly one source (the variable's own reader, the registry
// default reader, or the process environment), coerce the raw text to the
// declared type, and fall back to the default when the source holds
// nothing. Writes validate first and fail with ErrReadOnly when no writer
// is resolvable, so a registry without writers is read-only by default.
package settings
