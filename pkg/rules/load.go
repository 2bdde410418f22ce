package rules

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/logging"
)

// ParseRuleSet parses and validates a JSON rule-set definition.
//
// Loading fails fast: a structural violation (ErrRuleSetMalformed) or a glob
// or regex that fails to compile (ErrPatternInvalid) aborts the whole
// rule-set. No partial rule-set is ever returned; silently dropping a
// convention rule is worse than refusing to load.
func ParseRuleSet(source string, data []byte) (*RuleSet, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSetMalformed,
			"rule-set %q is not valid JSON", source)
	}

	if err := validateWithSchema(source, doc); err != nil {
		return nil, err
	}

	var rs RuleSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSetMalformed,
			"rule-set %q does not match the rule-set shape", source)
	}

	rs.source = source
	if err := validateAndCompile(&rs); err != nil {
		return nil, err
	}

	return &rs, nil
}

// ParseRuleSetYAML parses and validates a YAML rule-set definition. The
// document must satisfy the same schema as the JSON form.
func ParseRuleSetYAML(source string, data []byte) (*RuleSet, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSetMalformed,
			"rule-set %q is not valid YAML", source)
	}

	if err := validateWithSchema(source, doc); err != nil {
		return nil, err
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSetMalformed,
			"rule-set %q does not match the rule-set shape", source)
	}

	rs.source = source
	if err := validateAndCompile(&rs); err != nil {
		return nil, err
	}

	return &rs, nil
}

// LoadRuleSetFile reads and parses a rule-set file, dispatching on the file
// extension (.yaml/.yml for YAML, JSON otherwise). The file path becomes the
// rule-set source identifier.
func LoadRuleSetFile(path string) (*RuleSet, error) {
	logger := logging.GetLogger("rules.load")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "rule-set file %s", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "rule-set file %s", path)
	}

	var rs *RuleSet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		rs, err = ParseRuleSetYAML(path, data)
	default:
		rs, err = ParseRuleSet(path, data)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", path).
		Int("ruleCount", len(rs.Rules)).
		Msg("Loaded rule-set")

	return rs, nil
}

// validateAndCompile enforces rule-set semantics beyond the schema and
// compiles every pattern exactly once.
func validateAndCompile(rs *RuleSet) error {
	if rs.Version == "" {
		return errors.Newf(errors.ErrRuleSetMalformed,
			"rule-set %q has no version", rs.source)
	}
	if rs.Version != RuleSetVersion {
		return errors.Newf(errors.ErrRuleSetMalformed,
			"rule-set %q has unsupported version %q (want %q)", rs.source, rs.Version, RuleSetVersion)
	}
	if rs.Rules == nil {
		return errors.Newf(errors.ErrRuleSetMalformed,
			"rule-set %q has no rules sequence", rs.source)
	}

	for i := range rs.Rules {
		rule := &rs.Rules[i]

		if rule.Name == "" {
			return errors.Newf(errors.ErrRuleSetMalformed,
				"rule %d in %q has no name", i, rs.source)
		}

		// A rule must have at least one matching criterion.
		if len(rule.FilePatterns) == 0 && rule.Pattern == "" {
			return errors.Newf(errors.ErrRuleSetMalformed,
				"rule %q in %q has neither file_patterns nor pattern", rule.Name, rs.source)
		}

		rule.compiledPatterns = make([]*compiledGlob, 0, len(rule.FilePatterns))
		for _, pattern := range rule.FilePatterns {
			g, err := CompileGlob(pattern)
			if err != nil {
				return errors.Wrapf(err, errors.ErrPatternInvalid,
					"rule %q in %q", rule.Name, rs.source).
					WithDetail("rule", rule.Name).
					WithDetail("pattern", pattern)
			}
			rule.compiledPatterns = append(rule.compiledPatterns, g)
		}

		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil {
				return errors.Wrapf(err, errors.ErrPatternInvalid,
					"rule %q in %q has an invalid content pattern", rule.Name, rs.source).
					WithDetail("rule", rule.Name).
					WithDetail("pattern", rule.Pattern)
			}
			rule.contentRE = re
		}
	}

	return nil
}
