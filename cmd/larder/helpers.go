// Shared helpers for larder CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

// printValue writes a resolved value to stdout, as JSON when --json is set
// or in plain textual form otherwise.
func printValue(value any) error {
	if flagJSON {
		out, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal value: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(settings.StringForm(value))
	return nil
}

// reportValidation prints each violation on its own line to stderr and
// returns a terse error for cobra. Non-validation errors pass through.
func reportValidation(err error) error {
	var verr *settings.ValidationError
	if errors.As(err, &verr) {
		for _, v := range verr.Violations {
			fmt.Fprintln(os.Stderr, v)
		}
		return fmt.Errorf("%d validation failure(s)", len(verr.Violations))
	}
	return err
}

// lookupVariable fetches the declaration for name or returns a CLI-friendly
// error listing the declared names.
func lookupVariable(name string) (*settings.Variable, error) {
	v := registry.Lookup(name)
	if v == nil {
		declared := strings.Join(registry.Names(), ", ")
		if declared == "" {
			declared = "none"
		}
		return nil, fmt.Errorf("unknown variable %q (declared: %s)", name, declared)
	}
	return v, nil
}
