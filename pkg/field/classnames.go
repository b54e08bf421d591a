package field

import (
	"slices"
	"strings"
)

// ClassNames joins base with every class whose flag is set. Conditional
// classes are appended in sorted order so output is stable; blank and
// duplicate tokens are dropped.
func ClassNames(base string, conditional map[string]bool) string {
	tokens := strings.Fields(base)

	extra := make([]string, 0, len(conditional))
	for class, on := range conditional {
		if on {
			extra = append(extra, strings.Fields(class)...)
		}
	}
	slices.Sort(extra)
	tokens = append(tokens, extra...)

	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

// SanitizeClassList removes tokens that use a reserved prefix so callers
// cannot impersonate library-owned class names.
func SanitizeClassList(value, reservedPrefix string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if reservedPrefix != "" && strings.HasPrefix(token, reservedPrefix) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
