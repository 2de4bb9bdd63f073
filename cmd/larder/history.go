// History command shows the write history of a variable.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show the write history of a variable",
	Long: `History lists every recorded write of the named variable, newest
first. Requires the sqlite backend; the env backend keeps no history.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	v, err := lookupVariable(args[0])
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("history requires the sqlite backend")
	}

	revs, err := store.Revisions(v.StorageKey())
	if err != nil {
		return fmt.Errorf("history for %s: %w", args[0], err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(revs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal revisions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	for _, rev := range revs {
		fmt.Printf("%s  %s  %s\n", rev.WrittenAt.Format(time.RFC3339), rev.RevisionID, rev.Value)
	}
	return nil
}
