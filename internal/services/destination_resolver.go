package services

import "strings"

const FallbackDestination = "Paris"

// KnownDestinations are checked in this order; the first one mentioned
// anywhere in the text wins, regardless of where it appears.
var KnownDestinations = []string{"Paris", "Tokyo", "New York"}

// ResolveDestination picks the destination that drives the follow-up prompts.
func ResolveDestination(text string) string {
	lower := strings.ToLower(text)
	for _, dest := range KnownDestinations {
		if strings.Contains(lower, strings.ToLower(dest)) {
			return dest
		}
	}
	return FallbackDestination
}
