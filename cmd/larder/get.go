// Get command resolves a variable's current value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Resolve a variable's current value",
	Long: `Get resolves the named variable through its read chain and prints
the coerced value. Variables without a stored value print their default.

Example:
  larder get worker_count`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	if _, err := lookupVariable(args[0]); err != nil {
		return err
	}
	value, err := registry.Get(args[0])
	if err != nil {
		return fmt.Errorf("get %s: %w", args[0], err)
	}
	return printValue(value)
}
