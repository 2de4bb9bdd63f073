// Present command reports whether a variable resolves to a non-blank value.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presentCmd = &cobra.Command{
	Use:   "present <name>",
	Short: "Report whether a variable resolves to a non-blank value",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresent,
}

func runPresent(cmd *cobra.Command, args []string) error {
	if _, err := lookupVariable(args[0]); err != nil {
		return err
	}
	present, err := registry.IsPresent(args[0])
	if err != nil {
		return fmt.Errorf("present %s: %w", args[0], err)
	}
	fmt.Println(present)
	return nil
}
