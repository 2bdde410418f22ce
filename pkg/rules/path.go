package rules

import (
	"path"
	"strings"

	"github.com/arthur-debert/docrules/pkg/errors"
)

// validatePath rejects degenerate candidate paths. A bad path indicates a
// caller bug, so it is a hard per-call failure rather than a non-match.
func validatePath(raw string) error {
	if raw == "" {
		return errors.New(errors.ErrPathInvalid, "path is empty")
	}
	if strings.IndexByte(raw, 0) >= 0 {
		return errors.New(errors.ErrPathInvalid, "path contains a null byte")
	}
	return nil
}

// normalizePath normalizes a candidate path to slash-separated relative clean
// form. Inputs are expected to already be repository-relative and
// forward-slash separated; this only strips the common "./" and "/" prefixes
// and collapses redundant separators.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "./")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "//") && !strings.Contains(raw, "/./") && !strings.HasSuffix(raw, "/") {
		return raw
	}

	raw = path.Clean("/" + raw)
	raw = strings.TrimPrefix(raw, "/")
	if raw == "." {
		return ""
	}

	return raw
}
