package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/style"
)

// newResolveCmd creates the resolve command: show which rules apply to paths.
func newResolveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH...",
		Short: "Show which rules apply to one or more file paths",
		Long: `Resolve matches each path against every loaded rule-set, in precedence
order, and prints the matching rules with the convention documents they
reference. Paths are repository-relative and use forward slashes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range args {
				matches, err := sess.collection.Resolve(path)
				if err != nil {
					return err
				}
				fmt.Fprint(out, style.RenderMatches(path, matches))
			}

			return nil
		},
	}
}
