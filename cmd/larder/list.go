// List command shows every declared variable and its resolved value.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/settings"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every declared variable and its resolved value",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if flagJSON {
		snapshot, err := registry.Enumerate()
		if err != nil {
			return fmt.Errorf("enumerate: %w", err)
		}
		out, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	// Plain output preserves declaration order.
	for _, name := range registry.Names() {
		value, err := registry.Get(name)
		if err != nil {
			return fmt.Errorf("get %s: %w", name, err)
		}
		fmt.Printf("%s = %s\n", name, settings.StringForm(value))
	}
	return nil
}
