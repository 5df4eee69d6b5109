// Package catalog holds the static database of well-known subscription
// services used to seed parsed records from OCR text.
package catalog

import (
	"strings"
	"unicode/utf8"

	"fjacquet/subscan/internal/models"
)

// Service is one catalog entry: the name variants a receipt may carry
// (including Chinese names for Chinese services), the primary domain, the
// category, and the cycle the service usually bills on.
type Service struct {
	Names        []string
	Domain       string
	Category     string
	DefaultCycle models.CycleKind
}

// DisplayName returns the canonical (first-listed) name of the service.
func (s Service) DisplayName() string {
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[0]
}

// Match scans the catalog for service aliases appearing as case-insensitive
// substrings of text and returns the service owning the longest matching
// alias. Ties go to the first-registered service. Returns false when nothing
// matches. Preferring the longest alias resolves "YouTube" vs
// "YouTube Premium" to the more specific entry.
func Match(text string) (Service, bool) {
	lower := strings.ToLower(text)

	var best Service
	bestLength := 0
	found := false

	for _, service := range All {
		for _, name := range service.Names {
			if !strings.Contains(lower, strings.ToLower(name)) {
				continue
			}
			// Alias length in runes, so Chinese names compete fairly.
			if n := utf8.RuneCountInString(name); n > bestLength {
				best = service
				bestLength = n
				found = true
			}
		}
	}

	return best, found
}
