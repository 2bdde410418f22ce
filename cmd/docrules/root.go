package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/internal/version"
	"github.com/arthur-debert/docrules/pkg/logging"
)

// rootFlags holds the persistent flags shared by all subcommands.
type rootFlags struct {
	verbosity int
	repoRoot  string
	ruleFiles []string
	noColor   bool
}

// NewRootCmd creates the docrules root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "docrules",
		Short: "Resolve which engineering conventions apply to a file",
		Long: `docrules maps repository file paths to the convention documents that
apply to them, using glob-pattern rule-sets (cursorrules.json and the files
under .cursor/rules). It can list applicable rules, render the referenced
markdown guides, and validate file content such as commit messages.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&flags.repoRoot, "repo-root", "", "Repository root (default: discovered from the working directory)")
	pf.StringArrayVar(&flags.ruleFiles, "rules", nil, "Extra rule-set file to load (repeatable, loaded after discovered sets)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newResolveCmd(flags))
	rootCmd.AddCommand(newDocsCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newWatchCmd(flags))
	rootCmd.AddCommand(newInitCmd(flags))
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "docrules version %s\n", version.Version)
		fmt.Fprintf(out, "  commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  built:  %s\n", version.Date)
	},
}
