package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/rules"
)

// RenderMatches renders resolved matches for one path.
func RenderMatches(path string, matches []rules.RuleMatch) string {
	var result strings.Builder
	result.WriteString(TitleStyle.Render(path) + "\n")

	if len(matches) == 0 {
		result.WriteString(MutedStyle.Render("No conventions apply") + "\n")
		return result.String()
	}

	for _, m := range matches {
		indicator := MatchIndicator
		if !m.ContentMatched {
			indicator = FailedIndicator
		}

		line := fmt.Sprintf("%s %s %s", indicator, Bold(m.Rule.Name),
			MutedStyle.Render(fmt.Sprintf("(%s)", m.RuleSetSource)))
		result.WriteString(line + "\n")

		if m.Rule.Documentation != "" {
			result.WriteString(Indent(PathStyle.Render(m.Rule.Documentation), 1) + "\n")
		}
		if !m.ContentMatched && m.Message != "" {
			result.WriteString(Indent(WarningStyle.Render(m.Message), 1) + "\n")
		}
	}

	return result.String()
}

// RenderRuleSetTable renders loaded rule-sets as a table.
func RenderRuleSetTable(ruleSets []*rules.RuleSet) (string, error) {
	if len(ruleSets) == 0 {
		return MutedStyle.Render("No rule-sets loaded"), nil
	}

	data := pterm.TableData{{"Rule", "Patterns", "Documentation", "Source"}}
	for _, rs := range ruleSets {
		for i := range rs.Rules {
			rule := &rs.Rules[i]
			data = append(data, []string{
				rule.Name,
				strings.Join(rule.FilePatterns, ", "),
				rule.Documentation,
				rs.Source(),
			})
		}
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// RenderError renders an error message with its code when present.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderCheckFailure renders one failed content check.
func RenderCheckFailure(m rules.RuleMatch) string {
	msg := m.Message
	if msg == "" {
		msg = fmt.Sprintf("content does not match rule %q", m.Rule.Name)
	}
	return fmt.Sprintf("%s %s: %s", FailedIndicator, Bold(m.Rule.Name), msg)
}
