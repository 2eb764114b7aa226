package scenes

import "strings"

// Condense joins raw text fragments into a single grounding blob. Blank
// fragments are dropped; the remainder is joined with a single space,
// preserving fragment order. An empty result is the valid "no grounding
// context" signal: callers must not issue a generation request on it.
func Condense(fragments []string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
