package main

import (
	"bytes"
	"context"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/companyscan"
	csvout "github.com/fwojciec/companyscan/csv"
)

// RunCmd fetches every target, runs the extraction core over each page,
// and writes the CSV outputs.
type RunCmd struct {
	Targets        []string
	Out            string
	Report         string
	Concurrency    int
	KeepDuplicates bool
	SourceColumn   bool
}

// pageResult is the outcome for one target, in input position.
type pageResult struct {
	url        string
	extraction companyscan.Extraction
	fetchErr   error
}

// Run processes all targets with bounded concurrency. The extraction
// core is a pure function of its inputs, so pages are processed in
// parallel without coordination beyond the per-domain rate limit;
// results are reassembled in input order.
func (c *RunCmd) Run(ctx context.Context, deps *Dependencies) error {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]pageResult, len(c.Targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, target := range c.Targets {
		i, target := i, target
		g.Go(func() error {
			results[i] = c.processOne(gctx, deps, target)
			// A failed page becomes a report row, not a run failure;
			// only cancellation aborts the run.
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	names, rows, reports := c.aggregate(results)

	if err := c.writeOut(names, rows); err != nil {
		return err
	}
	written := len(names)
	if c.SourceColumn {
		written = len(rows)
	}
	deps.Logger.Info().Str("path", c.Out).Int("rows", written).Msg("wrote output")

	if c.Report != "" {
		var buf bytes.Buffer
		if err := csvout.WriteReport(&buf, reports); err != nil {
			return err
		}
		if err := os.WriteFile(c.Report, buf.Bytes(), 0644); err != nil {
			return err
		}
		deps.Logger.Info().Str("path", c.Report).Int("rows", len(reports)).Msg("wrote report")
	}

	return nil
}

// processOne rate-limits, fetches, and extracts a single target.
func (c *RunCmd) processOne(ctx context.Context, deps *Dependencies, target string) pageResult {
	if !companyscan.IsLocalRef(target) {
		if err := deps.Limiter.Wait(ctx, companyscan.Domain(target)); err != nil {
			return pageResult{url: target, fetchErr: err}
		}
	}

	deps.Logger.Debug().Str("url", target).Msg("fetching")
	markup, err := deps.Fetcher.Fetch(ctx, target)
	if err != nil || strings.TrimSpace(markup) == "" {
		if err == nil {
			err = companyscan.Errorf(companyscan.EUNAVAILABLE, "empty markup for %s", target)
		}
		deps.Logger.Warn().Str("url", target).Err(err).Msg("fetch failed")
		return pageResult{url: target, fetchErr: err}
	}

	extraction := deps.Extractor.Extract(target, markup)
	deps.Logger.Info().
		Str("url", target).
		Str("extractor", string(extraction.Provenance)).
		Int("names", len(extraction.Names)).
		Msg("extracted")
	return pageResult{url: target, extraction: extraction}
}

// aggregate flattens per-page results into output names/rows and report
// rows, applying the cross-page dedupe unless duplicates are kept.
func (c *RunCmd) aggregate(results []pageResult) ([]string, []csvout.Row, []companyscan.PageReport) {
	var (
		names   []string
		rows    []csvout.Row
		reports []companyscan.PageReport
	)

	for _, r := range results {
		if r.fetchErr != nil {
			reports = append(reports, companyscan.PageReport{
				URL:        r.url,
				Domain:     companyscan.Domain(r.url),
				Provenance: companyscan.ProvenanceFetchError,
				Note:       "empty_html",
			})
			continue
		}

		report := companyscan.PageReport{
			URL:        r.url,
			Domain:     companyscan.Domain(r.url),
			Provenance: r.extraction.Provenance,
			Count:      len(r.extraction.Names),
			Note:       "ok",
		}
		if len(r.extraction.Names) == 0 {
			report.Note = "no_names_detected"
			if strings.Contains(report.Domain, "linkedin") {
				report.Note = "linkedin_login_wall?"
			}
		}
		reports = append(reports, report)

		for _, n := range r.extraction.Names {
			names = append(names, n)
			rows = append(rows, csvout.Row{
				Name:    n,
				Source:  r.extraction.Provenance.Source(),
				FromURL: r.url,
			})
		}
	}

	if !c.KeepDuplicates {
		names = companyscan.Dedupe(names)
		rows = dedupeRows(rows)
	}

	return names, rows, reports
}

// dedupeRows keeps the first row per case-insensitive name, so a company
// seen on several pages keeps its first source and URL.
func dedupeRows(rows []csvout.Row) []csvout.Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]csvout.Row, 0, len(rows))
	for _, r := range rows {
		k := strings.ToLower(strings.TrimSpace(r.Name))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

func (c *RunCmd) writeOut(names []string, rows []csvout.Row) error {
	var buf bytes.Buffer
	if c.SourceColumn {
		if err := csvout.WriteRows(&buf, rows); err != nil {
			return err
		}
	} else {
		if err := csvout.WriteNames(&buf, names); err != nil {
			return err
		}
	}
	return os.WriteFile(c.Out, buf.Bytes(), 0644)
}
