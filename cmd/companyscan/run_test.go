package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/companyscan"
	"github.com/fwojciec/companyscan/mock"
)

func testDeps(fetcher *mock.Fetcher, extractor *mock.Extractor) *Dependencies {
	return &Dependencies{
		Logger:    zerolog.Nop(),
		Fetcher:   fetcher,
		Extractor: extractor,
		Limiter:   &mock.Limiter{},
	}
}

func TestRunCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes deduped names and a per-URL report", func(t *testing.T) {
		t.Parallel()

		targets := []string{
			"https://www.indeed.com/jobs?q=go",
			"https://www.linkedin.com/jobs/view/1",
			"https://bad.example.com/x",
			"https://jobs.example.com/42",
		}

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://bad.example.com/x" {
					return "", companyscan.Errorf(companyscan.EUNAVAILABLE, "HTTP 503 for %s", url)
				}
				return "<html></html>", nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(url, _ string) companyscan.Extraction {
				switch url {
				case "https://www.indeed.com/jobs?q=go":
					return companyscan.Extraction{
						Names:      []string{"Acme Corp", "Initech"},
						Provenance: companyscan.ProvenanceIndeed,
					}
				case "https://www.linkedin.com/jobs/view/1":
					return companyscan.Extraction{Provenance: companyscan.ProvenanceLinkedInFallback}
				default:
					return companyscan.Extraction{
						Names:      []string{"acme corp"},
						Provenance: companyscan.ProvenanceGeneric,
					}
				}
			},
		}

		dir := t.TempDir()
		cmd := &RunCmd{
			Targets:     targets,
			Out:         filepath.Join(dir, "out.csv"),
			Report:      filepath.Join(dir, "report.csv"),
			Concurrency: 2,
		}

		require.NoError(t, cmd.Run(context.Background(), testDeps(fetcher, extractor)))

		out, err := os.ReadFile(cmd.Out)
		require.NoError(t, err)
		// "acme corp" from the generic page collapses into the first-seen
		// "Acme Corp" by the cross-page dedupe.
		assert.Equal(t, "company_name\nAcme Corp\nInitech\n", string(out))

		report, err := os.ReadFile(cmd.Report)
		require.NoError(t, err)
		assert.Equal(t,
			"url,domain,extractor,names_count,note\n"+
				"https://www.indeed.com/jobs?q=go,indeed.com,indeed,2,ok\n"+
				"https://www.linkedin.com/jobs/view/1,linkedin.com,linkedin_fallback,0,linkedin_login_wall?\n"+
				"https://bad.example.com/x,bad.example.com,fetch_error,0,empty_html\n"+
				"https://jobs.example.com/42,jobs.example.com,generic,1,ok\n",
			string(report))
	})

	t.Run("keep-duplicates preserves every extracted name", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "<html></html>", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_, _ string) companyscan.Extraction {
				return companyscan.Extraction{
					Names:      []string{"Acme Corp"},
					Provenance: companyscan.ProvenanceGeneric,
				}
			},
		}

		cmd := &RunCmd{
			Targets:        []string{"https://a.example.com", "https://b.example.com"},
			Out:            filepath.Join(t.TempDir(), "out.csv"),
			Concurrency:    1,
			KeepDuplicates: true,
		}

		require.NoError(t, cmd.Run(context.Background(), testDeps(fetcher, extractor)))

		out, err := os.ReadFile(cmd.Out)
		require.NoError(t, err)
		assert.Equal(t, "company_name\nAcme Corp\nAcme Corp\n", string(out))
	})

	t.Run("source-column output keeps the first provenance per name", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "<html></html>", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(url, _ string) companyscan.Extraction {
				if url == "https://www.linkedin.com/jobs/search?keywords=go" {
					return companyscan.Extraction{
						Names:      []string{"Acme Corp"},
						Provenance: companyscan.ProvenanceLinkedInList,
					}
				}
				return companyscan.Extraction{
					Names:      []string{"Acme Corp", "Initech"},
					Provenance: companyscan.ProvenanceIndeed,
				}
			},
		}

		cmd := &RunCmd{
			Targets: []string{
				"https://www.linkedin.com/jobs/search?keywords=go",
				"https://www.indeed.com/jobs?q=go",
			},
			Out:          filepath.Join(t.TempDir(), "out.csv"),
			Concurrency:  1,
			SourceColumn: true,
		}

		require.NoError(t, cmd.Run(context.Background(), testDeps(fetcher, extractor)))

		out, err := os.ReadFile(cmd.Out)
		require.NoError(t, err)
		assert.Equal(t,
			"company_name,source,from_url\n"+
				"Acme Corp,linkedin,https://www.linkedin.com/jobs/search?keywords=go\n"+
				"Initech,indeed,https://www.indeed.com/jobs?q=go\n",
			string(out))
	})

	t.Run("canceled context aborts without writing output", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "<html></html>", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_, _ string) companyscan.Extraction {
				return companyscan.Extraction{
					Names:      []string{"Acme Corp"},
					Provenance: companyscan.ProvenanceGeneric,
				}
			},
		}

		cmd := &RunCmd{
			Targets:     []string{"https://a.example.com", "https://b.example.com"},
			Out:         filepath.Join(t.TempDir(), "out.csv"),
			Concurrency: 1,
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := cmd.Run(ctx, testDeps(fetcher, extractor))
		require.ErrorIs(t, err, context.Canceled)

		_, statErr := os.Stat(cmd.Out)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty markup counts as a fetch error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) { return "   ", nil },
		}
		extractor := &mock.Extractor{
			ExtractFn: func(_, _ string) companyscan.Extraction {
				t.Error("extractor must not run on empty markup")
				return companyscan.Extraction{}
			},
		}

		dir := t.TempDir()
		cmd := &RunCmd{
			Targets:     []string{"https://www.indeed.com/jobs?q=go"},
			Out:         filepath.Join(dir, "out.csv"),
			Report:      filepath.Join(dir, "report.csv"),
			Concurrency: 1,
		}

		require.NoError(t, cmd.Run(context.Background(), testDeps(fetcher, extractor)))

		report, err := os.ReadFile(cmd.Report)
		require.NoError(t, err)
		assert.Contains(t, string(report), "fetch_error,0,empty_html")
	})
}
