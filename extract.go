package companyscan

import "strings"

// Provenance identifies which extraction strategy produced a result set.
// Exactly one label applies per extraction call. The label is
// informational only and must not alter downstream formatting.
type Provenance string

// Provenance labels.
const (
	ProvenanceIndeed           Provenance = "indeed"
	ProvenanceLinkedInList     Provenance = "linkedin_list"
	ProvenanceLinkedInFallback Provenance = "linkedin_fallback"
	ProvenanceGeneric          Provenance = "generic"

	// ProvenanceFetchError is applied by the caller when no markup was
	// obtainable. The extraction core itself never produces it.
	ProvenanceFetchError Provenance = "fetch_error"
)

// Source returns the label's site family: the text before the first
// underscore, so linkedin_list and linkedin_fallback both report
// "linkedin".
func (p Provenance) Source() string {
	s := string(p)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return s[:i]
	}
	return s
}

// Extraction is the result of running the extraction core over one page:
// an ordered sequence of distinct, normalized company names plus the
// provenance label of the strategy that produced them. Names contain no
// duplicates under case-insensitive, whitespace-trimmed comparison and
// appear in first-seen order.
type Extraction struct {
	Names      []string
	Provenance Provenance
}

// Extractor pulls company names out of already-retrieved markup.
// Implementations never fail: malformed or empty markup degrades to an
// empty name list with whatever provenance the dispatcher reached.
// Calls are independent and safe to run in parallel.
type Extractor interface {
	Extract(url, markup string) Extraction
}

// PageReport is one diagnostic row describing how extraction went for a
// single URL. Under-extraction (zero names on a page that has some) is a
// correctness risk, not an error, and surfaces only here.
type PageReport struct {
	URL        string
	Domain     string
	Provenance Provenance
	Count      int
	Note       string
}
