package rules

import (
	"github.com/arthur-debert/docrules/pkg/logging"
)

// Resolve returns the ordered matches for a candidate path across one or more
// rule-sets, without file content. Rules that carry a content pattern are
// skipped (they cannot be evaluated without content).
//
// Ordering is rule-set argument order first, then declaration order inside
// each rule-set. An empty result means no conventions apply; that is success,
// not an error.
func Resolve(ruleSets []*RuleSet, path string) ([]RuleMatch, error) {
	return resolve(ruleSets, path, "", false)
}

// ResolveWithContent is Resolve plus the file's textual content, enabling
// rules with a content pattern. A rule whose path patterns match but whose
// content check fails contributes a match with ContentMatched=false and the
// rule's message.
func ResolveWithContent(ruleSets []*RuleSet, path, content string) ([]RuleMatch, error) {
	return resolve(ruleSets, path, content, true)
}

func resolve(ruleSets []*RuleSet, path, content string, hasContent bool) ([]RuleMatch, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}
	candidate := normalizePath(path)

	logger := logging.GetLogger("rules.resolver")

	var matches []RuleMatch
	for _, rs := range ruleSets {
		for i := range rs.Rules {
			rule := &rs.Rules[i]

			// Any pattern matching is enough; a rule still contributes at
			// most one match per path.
			if !rule.matchesPath(candidate) {
				continue
			}

			if rule.contentRE != nil {
				if !hasContent {
					// Content rules without supplied content are skipped,
					// never an error.
					continue
				}

				if !rule.contentRE.MatchString(content) {
					logger.Debug().
						Str("rule", rule.Name).
						Str("path", candidate).
						Msg("Content pattern failed")
					matches = append(matches, RuleMatch{
						Rule:          rule,
						RuleSetSource: rs.source,
						Message:       rule.Message,
					})
					continue
				}
			}

			matches = append(matches, RuleMatch{
				Rule:           rule,
				RuleSetSource:  rs.source,
				ContentMatched: true,
			})
		}
	}

	logger.Debug().
		Str("path", candidate).
		Int("ruleSets", len(ruleSets)).
		Int("matches", len(matches)).
		Msg("Resolved path")

	return matches, nil
}

// matchesPath reports whether any of the rule's compiled path patterns match.
// A rule with zero patterns matches nothing.
func (r *Rule) matchesPath(candidate string) bool {
	for _, g := range r.compiledPatterns {
		if g.Match(candidate) {
			return true
		}
	}
	return false
}
