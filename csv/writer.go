// Package csv writes extraction results and per-URL diagnostic reports
// as CSV.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fwojciec/companyscan"
)

// Row is one enriched output record: a company name plus the site family
// and page it came from.
type Row struct {
	Name    string
	Source  string
	FromURL string
}

// WriteNames writes the single-column company_name CSV.
func WriteNames(w io.Writer, names []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"company_name"}); err != nil {
		return err
	}
	for _, n := range names {
		if err := cw.Write([]string{n}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRows writes the three-column variant with source and from_url.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"company_name", "source", "from_url"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Name, r.Source, r.FromURL}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReport writes the per-URL diagnostic report
// (url, domain, extractor, names_count, note).
func WriteReport(w io.Writer, reports []companyscan.PageReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"url", "domain", "extractor", "names_count", "note"}); err != nil {
		return err
	}
	for _, r := range reports {
		rec := []string{r.URL, r.Domain, string(r.Provenance), strconv.Itoa(r.Count), r.Note}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
