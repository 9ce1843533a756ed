// Package goquery implements the extraction core: site-aware CSS selector
// cascades that pull company-name candidates out of job-listing markup.
//
// Each extractor runs a strictly ordered cascade of rules. Earlier rules
// take precedence but all rules contribute candidates; the union is then
// normalized, filtered for noise, and deduplicated preserving first-seen
// order.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/companyscan"
)

// rule is one tier of an extraction cascade: a pure function from a
// parsed document to zero or more raw candidate strings. Rules run in
// declared order and their results are concatenated, so new site-markup
// variants can be appended without touching control flow.
type rule struct {
	source string
	fn     func(doc *goquery.Document) []string
}

// runCascade applies rules in declared order and concatenates their
// candidates.
func runCascade(doc *goquery.Document, rules []rule) []string {
	var names []string
	for _, r := range rules {
		names = append(names, r.fn(doc)...)
	}
	return names
}

// firstText returns the text of the first selector variant that yields a
// non-empty string within sel. Variants account for current and legacy
// markup; earlier variants win.
func firstText(sel *goquery.Selection, variants ...string) string {
	for _, v := range variants {
		if txt := strings.TrimSpace(sel.Find(v).First().Text()); txt != "" {
			return txt
		}
	}
	return ""
}

// selectorTexts returns the trimmed text of every element matching
// selector, in document order.
func selectorTexts(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if txt := strings.TrimSpace(s.Text()); txt != "" {
			out = append(out, txt)
		}
	})
	return out
}

// titleCompanySeparator splits job-page titles like
// "Senior Engineer - Acme Corp - Jobs" into segments; the company sits in
// the second one.
const titleCompanySeparator = " - "

// secondSegment splits s on the title/company separator and returns the
// second non-empty segment, or "" when fewer than two exist.
func secondSegment(s string) string {
	var parts []string
	for _, p := range strings.Split(s, titleCompanySeparator) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// documentTitle returns the trimmed text of the document's <title>.
func documentTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// titleFallback is the lowest cascade tier: the cleaned second segment of
// the document title, if any.
func titleFallback(doc *goquery.Document) []string {
	if seg := secondSegment(documentTitle(doc)); seg != "" {
		return []string{seg}
	}
	return nil
}

// metaContent returns the content attribute of the first meta tag whose
// property or name attribute equals key; social preview tags are written
// both ways in the wild.
func metaContent(doc *goquery.Document, key string) string {
	for _, sel := range []string{
		"meta[property='" + key + "']",
		"meta[name='" + key + "']",
	} {
		if c, ok := doc.Find(sel).First().Attr("content"); ok {
			if c = strings.TrimSpace(c); c != "" {
				return c
			}
		}
	}
	return ""
}

// finalize normalizes raw candidates, rejects literal matches on the
// site's own brand name and noise strings, and deduplicates preserving
// first-seen order.
func finalize(raw []string, brand string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		n := companyscan.Clean(r)
		if n == "" {
			continue
		}
		if brand != "" && strings.EqualFold(n, brand) {
			continue
		}
		if companyscan.Noise(n) {
			continue
		}
		out = append(out, n)
	}
	return companyscan.Dedupe(out)
}

// parse builds a goquery document from markup. The second return is false
// only when the underlying parser fails outright; extractors then degrade
// to an empty result rather than surfacing an error.
func parse(markup string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, false
	}
	return doc, true
}
