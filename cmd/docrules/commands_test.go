package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/paths"
)

// writeRepo creates a temporary repository populated with the given files.
// Keys are repository-relative, forward-slash paths.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// runCommand executes the root command with args and captured output.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(paths.EnvStateDir, t.TempDir())

	cmd := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

const testRuleSet = `{
  "version": "1.0",
  "rules": [
    {
      "name": "typescript-conventions",
      "description": "TypeScript style guide",
      "file_patterns": ["**/*.ts"],
      "documentation": "docs/typescript.md"
    },
    {
      "name": "commit-message-format",
      "file_patterns": ["COMMIT_EDITMSG"],
      "pattern": "^(feat|fix|docs):",
      "message": "Commit messages must start with feat:, fix: or docs:",
      "documentation": "docs/commits.md"
    }
  ]
}
`

func TestResolveCommand(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "resolve", "src/app.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "src/app.ts")
	assert.Contains(t, stdout, "typescript-conventions")
	assert.Contains(t, stdout, "docs/typescript.md")
}

func TestResolveCommandNoMatches(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "resolve", "Makefile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No conventions apply")
}

func TestResolveCommandMultiplePaths(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color",
		"resolve", "a.ts", "b.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "a.ts")
	assert.Contains(t, stdout, "b.ts")
}

func TestResolveCommandMalformedRuleSet(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": `{"name": "bad"}`,
	})

	_, _, err := runCommand(t, "--repo-root", root, "--no-color", "resolve", "a.ts")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleSetMalformed))
}

func TestResolveCommandExtraRulesFlag(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"extra/more-rules.json": `{
  "version": "1.0",
  "rules": [
    {"name": "go-conventions", "file_patterns": ["**/*.go"], "documentation": "docs/go.md"}
  ]
}`,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color",
		"--rules", "extra/more-rules.json", "resolve", "pkg/main.go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "go-conventions")
}

func TestDocsCommandRaw(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json":   testRuleSet,
		"docs/typescript.md": "# TypeScript\n\nUse strict mode.\n",
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color",
		"docs", "--raw", "src/app.ts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "docs/typescript.md")
	assert.Contains(t, stdout, "Use strict mode.")
}

func TestDocsCommandNoMatches(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "docs", "Makefile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No conventions apply")
}

func TestDocsCommandMissingDocumentSkipped(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	// docs/typescript.md does not exist; the command warns and moves on.
	_, _, err := runCommand(t, "--repo-root", root, "--no-color", "docs", "--raw", "src/app.ts")
	require.NoError(t, err)
}

func TestCheckCommandPass(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
		"message.txt":      "feat: add resolver caching\n",
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color",
		"check", "--content-file", filepath.Join(root, "message.txt"), "COMMIT_EDITMSG")
	require.NoError(t, err)
	assert.Contains(t, stdout, "commit-message-format")
}

func TestCheckCommandFail(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
		"message.txt":      "added some stuff\n",
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color",
		"check", "--content-file", filepath.Join(root, "message.txt"), "COMMIT_EDITMSG")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, stdout, "must start with feat:")
}

func TestCheckCommandReadsPathFromRepo(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
		"COMMIT_EDITMSG":   "fix: handle empty rule-sets\n",
	})

	_, _, err := runCommand(t, "--repo-root", root, "--no-color", "check", "COMMIT_EDITMSG")
	require.NoError(t, err)
}

func TestListCommand(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
		".cursor/rules/team.json": `{
  "version": "1.0",
  "rules": [
    {"name": "review-checklist", "file_patterns": ["**/*"], "documentation": "docs/review.md"}
  ]
}`,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "typescript-conventions")
	assert.Contains(t, stdout, "review-checklist")
}

func TestListCommandEmpty(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No rule-sets loaded")
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, paths.RootRuleSetFile)
	assert.FileExists(t, filepath.Join(root, paths.RootRuleSetFile))

	// The scaffold must be loadable.
	stdout, _, err = runCommand(t, "--repo-root", root, "--no-color", "resolve", "main.go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "general-conventions")
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"cursorrules.json": testRuleSet,
	})

	_, _, err := runCommand(t, "--repo-root", root, "--no-color", "init")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestInitCommandWithConfig(t *testing.T) {
	root := t.TempDir()

	_, _, err := runCommand(t, "--repo-root", root, "--no-color", "init", "--config")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, paths.ConfigFileName))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "docrules version")
}

func TestIsRuleSetEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"root rule-set write", fsnotify.Event{Name: "/repo/cursorrules.json", Op: fsnotify.Write}, true},
		{"rules dir yaml create", fsnotify.Event{Name: "/repo/.cursor/rules/team.yaml", Op: fsnotify.Create}, true},
		{"rules dir json remove", fsnotify.Event{Name: "/repo/.cursor/rules/a.json", Op: fsnotify.Remove}, true},
		{"unrelated file", fsnotify.Event{Name: "/repo/main.go", Op: fsnotify.Write}, false},
		{"chmod only", fsnotify.Event{Name: "/repo/cursorrules.json", Op: fsnotify.Chmod}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRuleSetEvent(tt.event))
		})
	}
}

func TestConfigRuleFiles(t *testing.T) {
	root := writeRepo(t, map[string]string{
		".docrules.toml": "[resolver]\nrule_files = [\"team/rules.json\"]\n",
		"team/rules.json": `{
  "version": "1.0",
  "rules": [
    {"name": "sql-conventions", "file_patterns": ["**/*.sql"], "documentation": "docs/sql.md"}
  ]
}`,
	})

	stdout, _, err := runCommand(t, "--repo-root", root, "--no-color", "resolve", "migrations/001.sql")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sql-conventions")
}
