package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/companyscan"
)

const (
	// searchRouteMarker appears in the URL path of LinkedIn job searches.
	searchRouteMarker = "/jobs/search"

	// resultsListMarker is the container class of the left results list.
	// It identifies search pages in locally saved snapshots where the URL
	// gives no signal.
	resultsListMarker = "jobs-search__results-list"
)

// authWallText matches login-wall button labels that leak into company
// link selectors on blocked pages.
var authWallText = regexp.MustCompile(`(?i)sign in|join now`)

// IsSearchPage reports whether the page is a LinkedIn search-result list
// rather than a single job-detail page. The URL route marker is checked
// first; the results-list container marker covers saved snapshots.
func IsSearchPage(url, markup string) bool {
	if strings.Contains(url, searchRouteMarker) {
		return true
	}
	return strings.Contains(strings.ToLower(markup), resultsListMarker)
}

// LinkedIn extracts company names from LinkedIn search-result lists and
// job-detail pages.
type LinkedIn struct{}

// NewLinkedIn creates a new LinkedIn extractor.
func NewLinkedIn() *LinkedIn {
	return &LinkedIn{}
}

// Name returns the extractor's identifier.
func (e *LinkedIn) Name() string {
	return "linkedin"
}

// Extract pulls company names from markup. Search pages return only the
// left results list so the returned count matches the page's visible
// "N results"; mixing in topcard or meta-tag extraction would inflate it.
// When the list yields nothing (blocked or empty markup) the full
// fallback cascade runs instead.
func (e *LinkedIn) Extract(url, markup string) companyscan.Extraction {
	doc, ok := parse(markup)
	if !ok {
		return companyscan.Extraction{Provenance: companyscan.ProvenanceLinkedInFallback}
	}

	if IsSearchPage(url, markup) {
		if names := finalize(resultsListNames(doc), "LinkedIn"); len(names) > 0 {
			return companyscan.Extraction{
				Names:      names,
				Provenance: companyscan.ProvenanceLinkedInList,
			}
		}
	}

	raw := runCascade(doc, []rule{
		{source: "results-list", fn: resultsListNames},
		{source: "topcard", fn: topcardNames},
		{source: "social-meta", fn: socialTitleNames},
		{source: "title", fn: titleFallback},
	})

	return companyscan.Extraction{
		Names:      finalize(raw, "LinkedIn"),
		Provenance: companyscan.ProvenanceLinkedInFallback,
	}
}

// resultsListNames pulls one company per visible result card from the
// search results list, trying current and legacy card variants.
func resultsListNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("ul.jobs-search__results-list li").Each(func(_ int, li *goquery.Selection) {
		name := firstText(li,
			"h4.base-search-card__subtitle a, .base-search-card__subtitle a",
			"h4.base-search-card__subtitle",
			".job-card-container__primary-description, .job-card-container__company-name",
		)
		if name != "" {
			names = append(names, name)
		}
	})
	return names
}

// topcardNames targets job-detail layouts: the topcard organization link,
// flavor rows, and company links. Login-wall button text is excluded.
func topcardNames(doc *goquery.Document) []string {
	var names []string
	for _, sel := range []string{
		"a.topcard__org-name-link",
		"a.topcard__flavor",
		"a[href*='/company/']",
		"span.topcard__flavor",
	} {
		for _, txt := range selectorTexts(doc, sel) {
			if authWallText.MatchString(txt) {
				continue
			}
			names = append(names, txt)
		}
	}
	return names
}

// socialTitleNames reads the open-graph and twitter preview titles, which
// look like "Job Title - Company | LinkedIn", and keeps the company
// segment.
func socialTitleNames(doc *goquery.Document) []string {
	var names []string
	for _, key := range []string{"og:title", "twitter:title"} {
		content := companyscan.Clean(metaContent(doc, key))
		if content == "" {
			continue
		}
		if seg := secondSegment(content); seg != "" {
			names = append(names, seg)
		}
	}
	return names
}
