package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/companyscan"
)

var (
	// titleSeparators matches the punctuation job boards use between
	// title, company, and site name.
	titleSeparators = regexp.MustCompile(`[-|•–—]`)

	// jobVocabulary marks title segments that describe the posting rather
	// than name the company.
	jobVocabulary = regexp.MustCompile(`(?i)(job|jobs|apply|hiring|careers?)`)
)

// Generic extracts company names from pages on unrecognized job boards.
// Only the document title is consulted: segments carrying job-posting
// vocabulary are excluded before normalization and whatever remains is
// treated as a candidate.
type Generic struct{}

// NewGeneric creates a new Generic extractor.
func NewGeneric() *Generic {
	return &Generic{}
}

// Name returns the extractor's identifier.
func (e *Generic) Name() string {
	return "generic"
}

// Extract splits the document title on separator punctuation and keeps
// segments free of job vocabulary. A title with no separator carries no
// title/company structure and yields an empty result.
func (e *Generic) Extract(markup string) companyscan.Extraction {
	doc, ok := parse(markup)
	if !ok {
		return companyscan.Extraction{Provenance: companyscan.ProvenanceGeneric}
	}

	segments := titleSeparators.Split(documentTitle(doc), -1)
	if len(segments) < 2 {
		return companyscan.Extraction{Provenance: companyscan.ProvenanceGeneric}
	}

	var raw []string
	for _, p := range segments {
		p = strings.TrimSpace(p)
		if p == "" || jobVocabulary.MatchString(p) {
			continue
		}
		raw = append(raw, p)
	}

	return companyscan.Extraction{
		Names:      finalize(raw, ""),
		Provenance: companyscan.ProvenanceGeneric,
	}
}
