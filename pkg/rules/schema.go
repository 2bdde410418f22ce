package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	stderrors "errors"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/arthur-debert/docrules/pkg/errors"
)

//go:embed ruleset.v1.json
var schemaJSON []byte

const schemaID = "https://raw.githubusercontent.com/arthur-debert/docrules/main/pkg/rules/ruleset.v1.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// ruleSetSchema compiles the embedded rule-set schema once.
func ruleSetSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("unmarshal embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaID, doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		compiledSchema, schemaErr = compiler.Compile(schemaID)
	})

	return compiledSchema, schemaErr
}

// validateWithSchema validates a decoded rule-set document against the
// embedded JSON schema. Violations are structural, so they map to
// ErrRuleSetMalformed.
func validateWithSchema(source string, doc any) error {
	schema, err := ruleSetSchema()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "rule-set schema unavailable")
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if stderrors.As(err, &validationErr) {
		return errors.Wrapf(err, errors.ErrRuleSetMalformed,
			"rule-set %q violates schema", source).
			WithDetail("source", source)
	}

	return errors.Wrapf(err, errors.ErrRuleSetMalformed, "rule-set %q failed schema validation", source)
}
