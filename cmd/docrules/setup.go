package main

import (
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/docrules/pkg/config"
	"github.com/arthur-debert/docrules/pkg/logging"
	"github.com/arthur-debert/docrules/pkg/paths"
	"github.com/arthur-debert/docrules/pkg/rules"
)

// session holds everything a subcommand needs after setup.
type session struct {
	paths      *paths.Paths
	config     *config.Config
	collection *rules.Collection
}

// newSession resolves paths, loads configuration and all rule-sets.
// Rule-set load order defines precedence: discovered sets first, then sets
// listed in the config, then --rules flags.
func newSession(flags *rootFlags) (*session, error) {
	logger := logging.GetLogger("cli.setup")

	p, err := paths.New(flags.repoRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.ConfigFile())
	if err != nil {
		return nil, err
	}

	applyColorMode(flags, cfg)

	discovered, err := p.RuleSetFiles()
	if err != nil {
		return nil, err
	}

	var files []string
	files = append(files, discovered...)
	for _, f := range cfg.Resolver.RuleFiles {
		files = append(files, absolutize(p, f))
	}
	for _, f := range flags.ruleFiles {
		files = append(files, absolutize(p, f))
	}

	coll := rules.NewCollection()
	for _, file := range files {
		rs, err := rules.LoadRuleSetFile(file)
		if err != nil {
			// Fail fast: operating with partially-loaded conventions could
			// silently skip required checks.
			return nil, err
		}
		if err := coll.Add(rs); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("repoRoot", p.RepoRoot()).
		Int("ruleSets", coll.Count()).
		Msg("Session ready")

	return &session{paths: p, config: cfg, collection: coll}, nil
}

// absolutize resolves a configured rule-set path against the repository root.
func absolutize(p *paths.Paths, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RepoRoot(), filepath.FromSlash(path))
}

// applyColorMode applies --no-color and the configured color mode.
func applyColorMode(flags *rootFlags, cfg *config.Config) {
	if flags.noColor || cfg.Output.Color == "never" {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	} else if cfg.Output.Color == "always" {
		pterm.EnableColor()
	}
}
