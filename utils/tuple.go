package utils

import "strings"

// CutLast splits s around the last occurrence of sep. When sep is absent the
// whole string is returned as the tail.
func CutLast(s, sep string) (head, tail string) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", s
	}

	return s[:i], s[i+len(sep):]
}
