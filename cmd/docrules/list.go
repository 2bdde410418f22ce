package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/style"
)

// newListCmd creates the list command: show all loaded rules.
func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all loaded rules and their rule-sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}

			table, err := style.RenderRuleSetTable(sess.collection.RuleSets())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)

			return nil
		},
	}
}
