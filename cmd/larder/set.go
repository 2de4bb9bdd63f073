// Set command validates and stores a variable's value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Validate and store a variable's value",
	Long: `Set coerces the raw value to the variable's declared type, runs its
validation rules, and hands the result to the write backend. A validation
failure aborts the write.

Example:
  larder set worker_count 8`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	name, raw := args[0], args[1]
	v, err := lookupVariable(name)
	if err != nil {
		return err
	}
	value := settings.Coerce(v.Type, raw)
	if err := registry.Set(name, value); err != nil {
		return reportValidation(err)
	}
	fmt.Printf("%s = %s\n", name, settings.StringForm(value))
	return nil
}
