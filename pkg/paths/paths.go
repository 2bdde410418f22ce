// Package paths provides centralized path handling for docrules.
// It implements XDG Base Directory compliance for tool state and the
// discovery conventions for rule-set files inside a repository.
package paths

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/docrules/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot overrides repository root discovery
	EnvRepoRoot = "DOCRULES_REPO_ROOT"

	// EnvConfigDir overrides the XDG config directory for docrules
	EnvConfigDir = "DOCRULES_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for docrules
	EnvStateDir = "DOCRULES_STATE_DIR"
)

// Repository conventions. These define where rule-sets are looked up and are
// not user-configurable; configurable extras belong in pkg/config.
const (
	// AppDirName is the directory name for docrules-specific files
	AppDirName = "docrules"

	// RulesDirName is the repository directory scanned for rule-set files
	RulesDirName = ".cursor/rules"

	// RootRuleSetFile is the repository-root rule-set file, loaded first
	RootRuleSetFile = "cursorrules.json"

	// ConfigFileName is the per-repository tool configuration file
	ConfigFileName = ".docrules.toml"
)

// Paths resolves all filesystem locations used by the tool for one
// repository.
type Paths struct {
	repoRoot string
}

// New creates a Paths instance for the given repository root. When root is
// empty, the root is discovered from DOCRULES_REPO_ROOT, then by walking up
// from the working directory to the nearest .git, then the working directory
// itself.
func New(root string) (*Paths, error) {
	if root == "" {
		root = os.Getenv(EnvRepoRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		root = discoverRepoRoot(cwd)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve repository root %s", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "repository root %s", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "repository root %s is not a directory", abs)
	}

	return &Paths{repoRoot: abs}, nil
}

// discoverRepoRoot walks up from dir to the nearest directory containing
// .git, falling back to dir itself.
func discoverRepoRoot(dir string) string {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

// RepoRoot returns the absolute repository root.
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// ConfigDir returns the user-level configuration directory.
func (p *Paths) ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory used for logs.
func (p *Paths) StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the per-repository configuration file path. The file
// may not exist.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.repoRoot, ConfigFileName)
}

// RuleSetFiles returns the rule-set definition files for the repository, in
// load order: the root cursorrules.json first (the base set), then the files
// under .cursor/rules sorted by name for determinism. Only existing files
// are returned; a repository without rule-sets yields an empty slice.
func (p *Paths) RuleSetFiles() ([]string, error) {
	var files []string

	rootSet := filepath.Join(p.repoRoot, RootRuleSetFile)
	if info, err := os.Stat(rootSet); err == nil && !info.IsDir() {
		files = append(files, rootSet)
	}

	rulesDir := filepath.Join(p.repoRoot, filepath.FromSlash(RulesDirName))
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return files, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "rules directory %s", rulesDir)
	}

	var ruleFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			ruleFiles = append(ruleFiles, filepath.Join(rulesDir, entry.Name()))
		}
	}
	sort.Strings(ruleFiles)

	return append(files, ruleFiles...), nil
}

// DocPath resolves a documentation reference (repository-relative,
// forward-slash separated) to an absolute path. References escaping the
// repository root are rejected.
func (p *Paths) DocPath(rel string) (string, error) {
	if rel == "" {
		return "", errors.New(errors.ErrInvalidInput, "documentation path is empty")
	}

	joined := filepath.Join(p.repoRoot, filepath.FromSlash(rel))
	cleanRoot := filepath.Clean(p.repoRoot) + string(filepath.Separator)
	if !strings.HasPrefix(joined, cleanRoot) {
		return "", errors.Newf(errors.ErrInvalidInput, "documentation path %q escapes the repository root", rel)
	}

	return joined, nil
}
