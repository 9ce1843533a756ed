package companyscan

import (
	"regexp"
	"strings"
)

var (
	// brandSuffix matches trailing site-brand artifacts left behind by
	// page titles like "Acme Corp | LinkedIn - Jobs".
	brandSuffix = regexp.MustCompile(`(?i)\s*\|\s*(LinkedIn|Indeed|Glassdoor|Monster).*$`)

	// countNoise matches results-count strings like "208 ... jobs".
	countNoise = regexp.MustCompile(`\b\d+\b.*\bjobs?\b`)

	// ctaToken matches bare call-to-action vocabulary.
	ctaToken = regexp.MustCompile(`\b(apply|hiring|careers?)\b`)

	// letterRun matches a run of three or more letters followed by
	// whitespace, the signal that a CTA token sits inside a longer
	// multi-word brand phrase.
	letterRun = regexp.MustCompile(`[A-Za-z]{3,}\s`)
)

// Clean collapses whitespace runs to single spaces, trims surrounding
// separator characters, and strips a trailing site-brand suffix. It is
// idempotent and always returns a string; empty means "no candidate".
func Clean(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " -|\n\t\r")
	// Stripping the suffix can expose another trailing separator, as in
	// "Acme - | LinkedIn"; trim again so a single pass reaches the fixed
	// point.
	s = brandSuffix.ReplaceAllString(s, "")
	return strings.Trim(s, " -|\n\t\r")
}

// Noise reports whether a normalized candidate is not a plausible company
// name: too short, an aggregate "jobs in ..." summary, a results-count
// string, or a bare call-to-action word. A CTA token is only fatal when
// the string has no run of three or more letters followed by whitespace,
// so multi-word brands that happen to contain "Apply" survive.
func Noise(name string) bool {
	n := strings.TrimSpace(name)
	if len([]rune(n)) < 2 {
		return true
	}
	low := strings.ToLower(n)
	if strings.Contains(low, "jobs in") {
		return true
	}
	if countNoise.MatchString(low) {
		return true
	}
	if ctaToken.MatchString(low) && !letterRun.MatchString(low) {
		return true
	}
	return false
}

// Dedupe filters names to the first occurrence of each case-insensitive,
// whitespace-trimmed key, preserving first-seen order. Empty and
// whitespace-only entries are always dropped. Applying Dedupe to its own
// output is a fixed point.
func Dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		k := strings.ToLower(strings.TrimSpace(n))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, strings.TrimSpace(n))
	}
	return out
}
