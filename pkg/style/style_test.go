package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/rules"
)

func parseSet(t *testing.T, source, data string) *rules.RuleSet {
	t.Helper()
	rs, err := rules.ParseRuleSet(source, []byte(data))
	require.NoError(t, err)
	return rs
}

func TestRenderMatches(t *testing.T) {
	rs := parseSet(t, "base", `{"version":"1.0","rules":[
		{"name":"ts","file_patterns":["**/*.ts"],"documentation":"docs/typescript.md"}
	]}`)

	matches, err := rules.Resolve([]*rules.RuleSet{rs}, "server/index.ts")
	require.NoError(t, err)

	out := RenderMatches("server/index.ts", matches)
	assert.Contains(t, out, "ts")
	assert.Contains(t, out, "docs/typescript.md")
	assert.Contains(t, out, "base")
}

func TestRenderMatchesEmpty(t *testing.T) {
	out := RenderMatches("nothing.xyz", nil)
	assert.Contains(t, out, "No conventions apply")
}

func TestRenderMatchesFailedContent(t *testing.T) {
	rs := parseSet(t, "commit", `{"version":"1.0","rules":[
		{"name":"msg","file_patterns":[".git/COMMIT_EDITMSG"],"pattern":"^feat:","message":"use feat: prefix"}
	]}`)

	matches, err := rules.ResolveWithContent([]*rules.RuleSet{rs}, ".git/COMMIT_EDITMSG", "nope")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	out := RenderMatches(".git/COMMIT_EDITMSG", matches)
	assert.Contains(t, out, "use feat: prefix")
}

func TestRenderRuleSetTable(t *testing.T) {
	rs := parseSet(t, "base", `{"version":"1.0","rules":[
		{"name":"ts","file_patterns":["*.ts","server/**"],"documentation":"docs/ts.md"}
	]}`)

	out, err := RenderRuleSetTable([]*rules.RuleSet{rs})
	require.NoError(t, err)
	assert.Contains(t, out, "ts")
	assert.Contains(t, out, "*.ts, server/**")

	empty, err := RenderRuleSetTable(nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "No rule-sets loaded")
}

func TestRenderError(t *testing.T) {
	out := RenderError(errors.New(errors.ErrRuleSetMalformed, "bad rules"))
	assert.Contains(t, out, "RULESET_MALFORMED")
	assert.True(t, strings.Contains(out, "bad rules"))

	assert.Equal(t, "", RenderError(nil))
}
