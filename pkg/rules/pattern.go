package rules

import (
	"strings"

	"github.com/arthur-debert/docrules/pkg/errors"
)

// compiledGlob is the compiled form of one path glob pattern. Patterns are
// compiled once at load time and matched per resolve call.
type compiledGlob struct {
	source   string
	segments []globSegment
}

// globSegment is one slash-delimited pattern segment.
type globSegment struct {
	// text is the raw segment pattern. Empty for recursive segments.
	text string
	// recursive means the segment is exactly "**" and may span any number
	// of path segments, including zero.
	recursive bool
	// wildcard reports whether text contains "*".
	wildcard bool
}

// CompileGlob compiles a glob pattern for repeated matching.
//
// Supported syntax: literal segments, `*` within a segment (matches any run
// of characters except `/`), and `**` as a whole segment (matches zero or
// more path segments). Matching is anchored and case-sensitive.
func CompileGlob(pattern string) (*compiledGlob, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrPatternInvalid, "empty glob pattern")
	}
	if strings.IndexByte(pattern, 0) >= 0 {
		return nil, errors.Newf(errors.ErrPatternInvalid, "glob pattern %q contains a null byte", pattern)
	}
	if strings.HasPrefix(pattern, "/") || strings.HasSuffix(pattern, "/") {
		return nil, errors.Newf(errors.ErrPatternInvalid, "glob pattern %q must be relative with no trailing slash", pattern)
	}
	if strings.Contains(pattern, "//") {
		return nil, errors.Newf(errors.ErrPatternInvalid, "glob pattern %q contains an empty segment", pattern)
	}

	raw := strings.Split(pattern, "/")
	segments := make([]globSegment, 0, len(raw))
	for _, seg := range raw {
		if seg == "**" {
			// Collapse runs of "**" segments, they are equivalent to one.
			if len(segments) > 0 && segments[len(segments)-1].recursive {
				continue
			}
			segments = append(segments, globSegment{recursive: true})
			continue
		}

		segments = append(segments, globSegment{
			text:     seg,
			wildcard: strings.ContainsRune(seg, '*'),
		})
	}

	return &compiledGlob{source: pattern, segments: segments}, nil
}

// Match reports whether the compiled pattern matches the full path.
func (g *compiledGlob) Match(path string) bool {
	if path == "" {
		return false
	}
	return matchSegments(g.segments, strings.Split(path, "/"))
}

// MatchGlob reports whether pattern matches path. The full path must match
// the full pattern; there is no substring or prefix matching.
//
// This compiles the pattern on every call and exists for one-off checks and
// testability. Loaded rules use patterns compiled once at load time.
func MatchGlob(pattern, path string) (bool, error) {
	g, err := CompileGlob(pattern)
	if err != nil {
		return false, err
	}
	return g.Match(normalizePath(path)), nil
}

// matchSegments matches compiled pattern segments against path segments.
// Recursive segments backtrack over any number of path segments.
func matchSegments(segs []globSegment, parts []string) bool {
	if len(segs) == 0 {
		return len(parts) == 0
	}

	seg := segs[0]
	if seg.recursive {
		// "**" may match zero segments, or consume path segments one at a
		// time until the rest of the pattern matches.
		for i := 0; i <= len(parts); i++ {
			if matchSegments(segs[1:], parts[i:]) {
				return true
			}
		}
		return false
	}

	if len(parts) == 0 {
		return false
	}
	if !matchSegment(seg, parts[0]) {
		return false
	}
	return matchSegments(segs[1:], parts[1:])
}

// matchSegment matches one segment pattern against one path segment.
func matchSegment(seg globSegment, part string) bool {
	if !seg.wildcard {
		return part == seg.text
	}
	return matchStarWildcard(seg.text, part)
}

// matchStarWildcard matches a "*" wildcard pattern against one path segment.
// Iterative with single-star backtracking, no allocation.
func matchStarWildcard(pattern, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && pattern[pIdx] != '*' && pattern[pIdx] == input[sIdx] {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from here.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a star: backtrack pattern to the token after
			// '*' and let it consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
