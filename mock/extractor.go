package mock

import "github.com/fwojciec/companyscan"

var _ companyscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of companyscan.Extractor.
type Extractor struct {
	ExtractFn func(url, markup string) companyscan.Extraction
}

func (e *Extractor) Extract(url, markup string) companyscan.Extraction {
	return e.ExtractFn(url, markup)
}
