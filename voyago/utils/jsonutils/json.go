package jsonutils

import (
	"regexp"
	"strings"
)

var (
	reFence = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	reObj   = regexp.MustCompile(`(?s)[{\[].*[}\]]`)
)

// ExtractJSON pulls the JSON document out of AI/script output.
//
// Priority:
// 1. Triple-backtick fenced ```json ... ```
// 2. Any raw {...} or [...] document
//
// It also strips BOMs and invisible Unicode characters that some
// models sneak into their output.
func ExtractJSON(input string) string {
	input = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D' {
			return -1 // skip
		}
		return r
	}, input))

	if match := reFence.FindStringSubmatch(input); len(match) > 1 {
		input = strings.TrimSpace(match[1])
	}
	// Greedy match from first opening to last closing delimiter drops
	// any prose the script printed around the document.
	if match := reObj.FindString(input); match != "" {
		input = match
	}
	return strings.TrimSpace(input)
}
