// Package filter resolves input arguments into the concrete file list,
// expanding directory arguments and applying include/exclude patterns.
//
// Patterns follow fnmatch(3) without FNM_PATHNAME:
//   - * matches any characters including /
//   - ? matches exactly one character including /
//   - [...] matches one character from the set, [!...] negates it
//   - \ escapes the next character
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// matcher holds a compiled pattern set.
type matcher struct {
	patterns []*regexp.Regexp
}

func newMatcher(patterns []string) (*matcher, error) {
	m := &matcher{}

	for _, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, re)
	}

	return m, nil
}

// matchAny reports whether any pattern matches the path.
func (m *matcher) matchAny(path string) bool {
	for _, re := range m.patterns {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}

// compile translates an fnmatch-style pattern into an anchored regexp.
func compile(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder

	sb.WriteString("^")

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		case '\\':
			if i+1 < len(pattern) {
				i++
				sb.WriteString(regexp.QuoteMeta(string(pattern[i])))
			}
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("pattern %q: unterminated character class", pattern)
			}

			class := pattern[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}

			sb.WriteString("[" + class + "]")
			i += end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}

	return re, nil
}

// Resolve expands the arguments into the final file list. Directory
// arguments are walked recursively; plain file arguments are kept unless
// excluded. An empty include set matches everything when hasIncludes is
// false; excludes always win. Returns the selected files and the number
// of files scanned before filtering.
func Resolve(args, includes, excludes []string, hasIncludes bool) ([]string, int, error) {
	inc, err := newMatcher(includes)
	if err != nil {
		return nil, 0, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := newMatcher(excludes)
	if err != nil {
		return nil, 0, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	var files []string

	scanned := 0

	keep := func(path string) {
		scanned++

		if hasIncludes && !inc.matchAny(path) {
			return
		}

		if exc.matchAny(path) {
			return
		}

		files = append(files, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, scanned, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			keep(filepath.ToSlash(arg))

			continue
		}

		walkErr := filepath.WalkDir(arg, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				return nil
			}

			keep(filepath.ToSlash(path))

			return nil
		})
		if walkErr != nil {
			return nil, scanned, fmt.Errorf("walking %q: %w", arg, walkErr)
		}
	}

	return files, scanned, nil
}
