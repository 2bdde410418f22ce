// Package docs loads and renders the convention documents referenced by
// matched rules. The resolver itself never touches the filesystem; this
// package is the external collaborator that does.
package docs

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/logging"
	"github.com/arthur-debert/docrules/pkg/paths"
)

// Document is one loaded convention document.
type Document struct {
	// Ref is the documentation reference as it appears in the rule.
	Ref string

	// FilePath is the absolute path the reference resolved to.
	FilePath string

	// Format is the file extension, e.g. ".md".
	Format string

	// Content is the raw document text.
	Content string
}

// Loader reads documentation files relative to a repository root.
type Loader struct {
	paths *paths.Paths
}

// NewLoader creates a documentation loader for the given repository paths.
func NewLoader(p *paths.Paths) *Loader {
	return &Loader{paths: p}
}

// Load reads one documentation reference. A reference that does not resolve
// to a file yields ErrDocNotFound; rule-sets are free to reference documents
// that are not present, so callers typically warn and continue.
func (l *Loader) Load(ref string) (*Document, error) {
	abs, err := l.paths.DocPath(ref)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrDocNotFound, "documentation %q", ref)
		}
		return nil, errors.Wrapf(err, errors.ErrDocAccess, "documentation %q", ref)
	}

	return &Document{
		Ref:      ref,
		FilePath: abs,
		Format:   filepath.Ext(abs),
		Content:  string(content),
	}, nil
}

// LoadAll loads a list of documentation references, skipping missing ones
// with a warning. The returned documents preserve input order.
func (l *Loader) LoadAll(refs []string) []*Document {
	logger := logging.GetLogger("docs.loader")

	loaded := make([]*Document, 0, len(refs))
	for _, ref := range refs {
		doc, err := l.Load(ref)
		if err != nil {
			logger.Warn().Err(err).Str("ref", ref).Msg("Skipping documentation reference")
			continue
		}
		loaded = append(loaded, doc)
	}

	return loaded
}
