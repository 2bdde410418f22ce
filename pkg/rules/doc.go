// Package rules implements the rule-set model and resolver for docrules.
//
// A rule-set is a versioned, ordered collection of rules. Each rule maps a set
// of path glob patterns (and optionally a content regular expression) to a
// convention document. The resolver answers, for a repository file path, which
// rules apply and in what order.
//
// # Pattern Conventions
//
// Path patterns are anchored globs over forward-slash relative paths:
//
//   - `README.md` - Exact path match
//   - `*.ts` - Matches any .ts file at the root (a `*` never crosses `/`)
//   - `**/*.ts` - Matches .ts files at any depth, including the root
//   - `server/**/*.ts` - Matches under server/ at any depth, including
//     directly inside it
//
// Brace expansion and character classes are not supported.
//
// # Ordering
//
// Resolution order is deterministic: rule-sets are evaluated in the order the
// caller supplies them, and rules within a rule-set in declaration order. A
// rule contributes at most one match per path even when several of its
// patterns match.
//
// # Content rules
//
// A rule may carry a content regular expression (for commit-message or
// branch-name conventions, keyed to pseudo-paths such as
// `.git/COMMIT_EDITMSG`). Content rules are gated by their path patterns: the
// path must match first, then the regex is evaluated against the supplied
// content. A failed content check still produces a match, flagged and carrying
// the rule's message, so callers can surface it as a lint warning. When no
// content is supplied the rule is skipped.
//
// Rule-sets are immutable once loaded; Resolve is a pure function and is safe
// for concurrent use.
package rules
