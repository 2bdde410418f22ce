package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docrules/pkg/config"
	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/paths"
	"github.com/arthur-debert/docrules/pkg/rules"
)

// starterRuleSet is the rule-set scaffold written by init. It is a valid
// rule-set that demonstrates both pattern kinds.
const starterRuleSet = `{
  "version": "` + rules.RuleSetVersion + `",
  "rules": [
    {
      "name": "general-conventions",
      "description": "Conventions that apply to every file",
      "file_patterns": ["**/*"],
      "documentation": "docs/conventions.md"
    }
  ]
}
`

// newInitCmd creates the init command: scaffold a repository for docrules.
func newInitCmd(flags *rootFlags) *cobra.Command {
	var withConfig bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter cursorrules.json in the repository",
		Long: `Init writes a minimal cursorrules.json at the repository root. With
--config it also writes a .docrules.toml with the default settings. Existing
files are never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New(flags.repoRoot)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			ruleSetPath := filepath.Join(p.RepoRoot(), paths.RootRuleSetFile)
			if _, err := os.Stat(ruleSetPath); err == nil {
				return errors.Newf(errors.ErrAlreadyExists, "rule-set file %s already exists", ruleSetPath)
			}
			if err := os.WriteFile(ruleSetPath, []byte(starterRuleSet), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "write rule-set file %s", ruleSetPath)
			}
			fmt.Fprintf(out, "Created %s\n", ruleSetPath)

			if withConfig {
				if err := config.WriteDefault(p.ConfigFile()); err != nil {
					return err
				}
				fmt.Fprintf(out, "Created %s\n", p.ConfigFile())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withConfig, "config", false, "Also write a default .docrules.toml")

	return cmd
}
