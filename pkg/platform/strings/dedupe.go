// Package strings provides small string-slice helpers shared by config
// parsing.
package strings

import "strings"

// DedupeAndTrim trims whitespace, drops empties and removes duplicates from a
// slice, preserving first-seen order. Broker lists from the environment often
// carry stray spaces and repeats; connecting twice to one broker wastes a
// client slot.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
