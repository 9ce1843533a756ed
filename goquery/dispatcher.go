package goquery

import (
	"strings"

	"github.com/fwojciec/companyscan"
)

// Ensure Dispatcher implements companyscan.Extractor at compile time.
var _ companyscan.Extractor = (*Dispatcher)(nil)

// Dispatcher routes a (url, markup) pair to the extractor for its site
// and returns that extractor's result unchanged. It has no retry or
// error logic of its own: empty or malformed markup yields an empty
// result with the provenance intact.
type Dispatcher struct {
	indeed   *Indeed
	linkedin *LinkedIn
	generic  *Generic
}

// NewDispatcher creates a Dispatcher wired with all site extractors.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		indeed:   NewIndeed(),
		linkedin: NewLinkedIn(),
		generic:  NewGeneric(),
	}
}

// Extract classifies the URL and delegates to the matching extractor.
// Local snapshots carry no URL signal, so their markup is sniffed for
// site tokens, defaulting to the generic extractor when neither appears.
func (d *Dispatcher) Extract(url, markup string) companyscan.Extraction {
	switch companyscan.Classify(url) {
	case companyscan.StrategyIndeed:
		return d.indeed.Extract(markup)
	case companyscan.StrategyLinkedIn:
		return d.linkedin.Extract(url, markup)
	case companyscan.StrategyLocal:
		low := strings.ToLower(markup)
		if strings.Contains(low, "indeed") {
			return d.indeed.Extract(markup)
		}
		if strings.Contains(low, "linkedin") {
			return d.linkedin.Extract(url, markup)
		}
		return d.generic.Extract(markup)
	default:
		return d.generic.Extract(markup)
	}
}
