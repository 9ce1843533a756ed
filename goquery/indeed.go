package goquery

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/companyscan"
)

// Indeed extracts company names from Indeed search-result and job-detail
// pages. Validated against current and legacy Indeed markup.
type Indeed struct{}

// NewIndeed creates a new Indeed extractor.
func NewIndeed() *Indeed {
	return &Indeed{}
}

// Name returns the extractor's identifier.
func (e *Indeed) Name() string {
	return "indeed"
}

// Extract runs the Indeed cascade: per-result-card selectors, whole-page
// company blocks, then the document title fallback.
func (e *Indeed) Extract(markup string) companyscan.Extraction {
	doc, ok := parse(markup)
	if !ok {
		return companyscan.Extraction{Provenance: companyscan.ProvenanceIndeed}
	}

	raw := runCascade(doc, []rule{
		{source: "result-cards", fn: indeedCardNames},
		{source: "company-blocks", fn: indeedCompanyBlockNames},
		{source: "title", fn: titleFallback},
	})

	return companyscan.Extraction{
		Names:      finalize(raw, "Indeed"),
		Provenance: companyscan.ProvenanceIndeed,
	}
}

// indeedCardNames pulls one name per detected search-result card, taking
// the first selector variant that yields non-empty text within each card.
func indeedCardNames(doc *goquery.Document) []string {
	var names []string
	cards := "[data-jk], .job_seen_beacon, .resultContent, .tapItem, .slider_container"
	doc.Find(cards).Each(func(_ int, card *goquery.Selection) {
		name := firstText(card,
			".companyName",
			"[data-testid='company-name']",
			".companyInfo span",
			".companyInfo a",
			".company_location .companyName",
		)
		if name != "" {
			names = append(names, name)
		}
	})
	return names
}

// indeedCompanyBlockNames targets single-job-detail layouts: company info
// containers, inline rating rows, and company links across several page
// generations.
func indeedCompanyBlockNames(doc *goquery.Document) []string {
	var names []string
	for _, sel := range []string{
		".jobsearch-CompanyInfoContainer a[data-tn-element='companyName']",
		"#companyInfo a",
		"[data-company-name]",
		".icl-u-lg-mr--sm.icl-u-xs-mr--xs",
		".jobsearch-CompanyInfoWithoutHeaderImage div a",
		".jobsearch-InlineCompanyRating div",
	} {
		names = append(names, selectorTexts(doc, sel)...)
	}
	return names
}
