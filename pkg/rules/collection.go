package rules

import (
	"github.com/arthur-debert/docrules/pkg/registry"
)

// Collection is a caller-owned, insertion-ordered set of loaded rule-sets.
// The order rule-sets are added defines resolution precedence. There is no
// hidden global collection: callers build one and pass paths to it.
//
// A Collection is safe for concurrent use. Rule-sets are immutable once
// added, so resolution never requires locking beyond the registry's own.
type Collection struct {
	reg registry.Registry[*RuleSet]
}

// NewCollection creates an empty rule-set collection.
func NewCollection() *Collection {
	return &Collection{reg: registry.New[*RuleSet]()}
}

// Add appends a loaded rule-set to the collection. Source names must be
// unique within a collection.
func (c *Collection) Add(rs *RuleSet) error {
	return c.reg.Register(rs.source, rs)
}

// Get returns a rule-set by its source name.
func (c *Collection) Get(source string) (*RuleSet, error) {
	return c.reg.Get(source)
}

// Sources returns the rule-set source names in precedence order.
func (c *Collection) Sources() []string {
	return c.reg.List()
}

// RuleSets returns the rule-sets in precedence order.
func (c *Collection) RuleSets() []*RuleSet {
	names := c.reg.List()
	sets := make([]*RuleSet, 0, len(names))
	for _, name := range names {
		if rs, err := c.reg.Get(name); err == nil {
			sets = append(sets, rs)
		}
	}
	return sets
}

// Count returns the number of rule-sets in the collection.
func (c *Collection) Count() int {
	return c.reg.Count()
}

// Resolve resolves a path against the collection in precedence order.
func (c *Collection) Resolve(path string) ([]RuleMatch, error) {
	return Resolve(c.RuleSets(), path)
}

// ResolveWithContent resolves a path with file content, enabling content rules.
func (c *Collection) ResolveWithContent(path, content string) ([]RuleMatch, error) {
	return ResolveWithContent(c.RuleSets(), path, content)
}
