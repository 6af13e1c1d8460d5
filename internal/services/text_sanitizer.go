package services

import (
	"strings"

	"traveldesigner/internal/models/response_models"
)

// metadataMarkers identify lines of run debug output. Matching is
// case-sensitive and a hit drops the whole line.
var metadataMarkers = []string{
	"new item(s)",
	"raw response(s)",
	"input guardrail result(s)",
	"output guardrail result(s)",
	"RunResult:",
	"Last agent:",
	"Final output (str):",
}

// ExtractFinalText returns the display text of a run result.
func ExtractFinalText(result response_models.RunResult) string {
	return SanitizeText(result.RawText())
}

// SanitizeText removes metadata lines, trims the rest and joins them back.
func SanitizeText(raw string) string {
	lines := splitLines(raw)
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if isMetadataLine(line) {
			continue
		}
		cleaned = append(cleaned, strings.TrimSpace(line))
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

func isMetadataLine(line string) bool {
	for _, marker := range metadataMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// splitLines breaks text on every line boundary: \n, \r, \r\n, \v, \f,
// \x1c-\x1e, \x85, U+2028 and U+2029. A trailing boundary does not start
// an extra empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if !isLineBoundary(r) {
			continue
		}
		if r == '\n' && i > 0 && text[i-1] == '\r' {
			start = i + 1
			continue
		}
		lines = append(lines, text[start:i])
		start = i + len(string(r))
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
