package text

import (
	"strings"

	"github.com/littlesmith/arguments/types"
)

// Split cuts s at every occurrence of delimiter. The delimiter is discarded and a trailing
// non-empty remainder is included. An empty delimiter returns s as the only part.
func Split(s, delimiter string) []string {
	result := make([]string, 0, strings.Count(s, delimiter)+1)
	if delimiter == "" {
		if s != "" {
			result = append(result, s)
		}
		return result
	}

	for {
		pos := strings.Index(s, delimiter)
		if pos < 0 {
			break
		}
		result = append(result, s[:pos])
		s = s[pos+len(delimiter):]
	}
	if s != "" {
		result = append(result, s)
	}

	return result
}

// findFirstOf returns the position of the leftmost delimiter in s together with the delimiter found.
// When two delimiters start at the same position the one listed first wins; callers should not rely
// on this and pass non-overlapping delimiter sets instead.
func findFirstOf(s string, delimiters []string) (int, string) {
	pos := -1
	found := ""
	for _, d := range delimiters {
		if d == "" {
			continue
		}
		if p := strings.Index(s, d); p >= 0 && (pos < 0 || p < pos) {
			pos = p
			found = d
		}
	}

	return pos, found
}

// SplitAny cuts s at the earliest occurrence of any of the given delimiters, repeatedly. It returns the parts
// and, for every gap between two parts, the delimiter which was matched there.
func SplitAny(s string, delimiters []string) (parts []string, matched []string) {
	for {
		pos, d := findFirstOf(s, delimiters)
		if pos < 0 {
			break
		}
		parts = append(parts, s[:pos])
		matched = append(matched, d)
		s = s[pos+len(d):]
	}
	if s != "" {
		parts = append(parts, s)
	}

	return parts, matched
}

// Join concatenates parts with delimiter and is the inverse of Split for non-empty input.
// Joining zero parts is not defined and returns types.ErrEmptyJoin.
func Join(parts []string, delimiter string) (string, error) {
	if len(parts) == 0 {
		return "", types.ErrEmptyJoin
	}

	return strings.Join(parts, delimiter), nil
}
