// Check command validates every declared variable's current value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every declared variable's current value",
	Long: `Check resolves each declared variable and runs its validation rules,
reporting every violation across all variables rather than stopping at
the first. Intended for startup and CI configuration checks.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := registry.ValidateAll(); err != nil {
		return reportValidation(err)
	}
	fmt.Println("all settings valid")
	return nil
}
