// Package sanitize normalizes raw llama output into publishable text.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// Sequence markers emitted by the generation protocol (<s>, </s>)
	sequenceMarkers = regexp.MustCompile(`</?s>`)

	// Instruction-boundary markers ([INST], [/INST])
	instructionMarkers = regexp.MustCompile(`\[/?INST\]`)

	// Runs of three or more newlines collapse to a single blank line
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Clean strips generation-protocol markers, trims surrounding whitespace and
// collapses excess blank lines. Idempotent: Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	cleaned := sequenceMarkers.ReplaceAllString(raw, "")
	cleaned = instructionMarkers.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = excessNewlines.ReplaceAllString(cleaned, "\n\n")
	return cleaned
}
