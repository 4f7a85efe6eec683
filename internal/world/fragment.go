package world

import "regexp"

// Fragment markers are embedded in file content as a label, a colon, and
// an uppercase token, e.g. "KEY_FRAGMENT_1: ALPHA_UNLOCK_7F3A".
var fragmentPattern = regexp.MustCompile(`KEY_FRAGMENT_\d+:\s+([A-Z0-9_]+)`)

// ScanFragments returns the distinct fragment tokens embedded in content,
// in order of first appearance.
func ScanFragments(content string) []string {
	var tokens []string
	seen := map[string]bool{}

	for _, m := range fragmentPattern.FindAllStringSubmatch(content, -1) {
		token := m[1]
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	return tokens
}
