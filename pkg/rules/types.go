package rules

import "regexp"

// RuleSetVersion is the rule-set format version this package understands.
const RuleSetVersion = "1.0"

// RuleSet is a versioned, ordered collection of rules loaded from one source.
// Rule order is meaningful: it defines intra-set match order.
type RuleSet struct {
	// Version is the rule-set format version ("1.0").
	Version string `json:"version" yaml:"version"`

	// Rules in declaration order.
	Rules []Rule `json:"rules" yaml:"rules"`

	// source identifies where this rule-set came from (file path or a
	// caller-chosen name). Set by the loader, surfaced on matches.
	source string
}

// Source returns the identifier of the definition this rule-set was loaded from.
func (rs *RuleSet) Source() string {
	return rs.source
}

// Rule maps path glob patterns, and optionally a content regular expression,
// to a convention document.
type Rule struct {
	// Name is a human-readable identifier, unique within a rule-set by
	// convention (not enforced).
	Name string `json:"name" yaml:"name"`

	// Description is a free-text explanation of the rule.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// FilePatterns are glob patterns matched against the candidate path.
	// A rule matches the path when any pattern matches. A rule with zero
	// patterns matches nothing.
	FilePatterns []string `json:"file_patterns,omitempty" yaml:"file_patterns,omitempty"`

	// Pattern is an optional regular expression applied to file content
	// (or pseudo-file content such as a commit message), layered on top of
	// the path match.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Message is surfaced when Pattern fails to match the content.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Documentation is a repository-relative path to a markdown document to
	// surface when the rule fires. Existence is not validated here.
	Documentation string `json:"documentation,omitempty" yaml:"documentation,omitempty"`

	// Compiled state, populated at load time. Never mutated afterwards.
	compiledPatterns []*compiledGlob
	contentRE        *regexp.Regexp
}

// HasContentPattern reports whether the rule carries a content check.
func (r *Rule) HasContentPattern() bool {
	return r.contentRE != nil
}

// RuleMatch is the result of matching a path (and optionally content)
// against one rule.
type RuleMatch struct {
	// Rule is the matched rule.
	Rule *Rule

	// RuleSetSource identifies the rule-set the rule came from.
	RuleSetSource string

	// ContentMatched is false only when the rule carries a content pattern,
	// content was supplied, the path matched, and the content check failed.
	// Such a match surfaces the rule's Message as a warning.
	ContentMatched bool

	// Message carries the rule's message on a failed content check.
	Message string
}

// Documentation returns the unique documentation paths referenced by matches,
// preserving match order. Matches with a failed content check or without a
// documentation reference contribute nothing.
func Documentation(matches []RuleMatch) []string {
	seen := make(map[string]struct{}, len(matches))
	docs := make([]string, 0, len(matches))

	for _, m := range matches {
		if !m.ContentMatched || m.Rule.Documentation == "" {
			continue
		}
		if _, ok := seen[m.Rule.Documentation]; ok {
			continue
		}
		seen[m.Rule.Documentation] = struct{}{}
		docs = append(docs, m.Rule.Documentation)
	}

	return docs
}
