package companyscan

import (
	"net/url"
	"strings"
)

// Strategy identifies which extraction strategy applies to a page.
type Strategy string

// Extraction strategies.
const (
	StrategyIndeed   Strategy = "indeed"
	StrategyLinkedIn Strategy = "linkedin"

	// StrategyLocal marks a local snapshot whose source site is unknown
	// until the markup itself is sniffed by the dispatcher.
	StrategyLocal Strategy = "local"

	StrategyGeneric Strategy = "generic"
)

// Domain returns the lowercased host of rawURL with a leading "www."
// stripped. Returns "" when the URL cannot be parsed or has no host.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

// IsLocalRef reports whether ref points at the local filesystem rather
// than a remote resource: a file:// URL or a bare path with no scheme
// separator.
func IsLocalRef(ref string) bool {
	if strings.HasPrefix(strings.ToLower(ref), "file://") {
		return true
	}
	return !strings.Contains(ref, "://")
}

// Classify maps a URL to an extraction strategy. Host matching is
// substring-based so regional subdomains like de.indeed.com match.
func Classify(rawURL string) Strategy {
	d := Domain(rawURL)
	switch {
	case strings.Contains(d, "indeed"):
		return StrategyIndeed
	case strings.Contains(d, "linkedin"):
		return StrategyLinkedIn
	case IsLocalRef(rawURL):
		return StrategyLocal
	default:
		return StrategyGeneric
	}
}
