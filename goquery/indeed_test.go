package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/companyscan"
	"github.com/fwojciec/companyscan/goquery"
)

func TestIndeed_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts one name per search result card", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Go Developer Jobs</title></head>
<body>
<div class="job_seen_beacon">
	<span class="companyName">Initech</span>
</div>
<div class="job_seen_beacon">
	<span data-testid="company-name">Globex Corporation</span>
</div>
<div class="tapItem">
	<div class="companyInfo"><a href="/cmp/hooli">Hooli</a></div>
</div>
</body>
</html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Initech", "Globex Corporation", "Hooli"}, got.Names)
		assert.Equal(t, companyscan.ProvenanceIndeed, got.Provenance)
	})

	t.Run("companyName wins over legacy variants within a card", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="resultContent">
	<span class="companyName">Initech</span>
	<div class="companyInfo"><span>Legacy Name</span></div>
</div>
</body></html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Initech"}, got.Names)
	})

	t.Run("normalizes a company block with brand suffix", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="companyInfo"><a href="/cmp/acme">  Acme   Corp  | Indeed</a></div>
</body></html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Acme Corp"}, got.Names)
	})

	t.Run("falls back to the title second segment", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Senior Gopher - Initech - Indeed.com</title></head><body></body></html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Initech"}, got.Names)
	})

	t.Run("unions cascade tiers and deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<html>
<head><title>Senior Gopher - Initech - Indeed.com</title></head>
<body>
<div class="job_seen_beacon"><span class="companyName">Initech</span></div>
<div class="job_seen_beacon"><span class="companyName">Globex Corporation</span></div>
</body>
</html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Initech", "Globex Corporation"}, got.Names)
	})

	t.Run("drops results-count noise from cards", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="resultContent"><span class="companyName">208 EDM Operator AND Machinist jobs in United States</span></div>
<div class="resultContent"><span class="companyName">Acme Corp</span></div>
</body></html>`

		got := goquery.NewIndeed().Extract(html)

		assert.Equal(t, []string{"Acme Corp"}, got.Names)
	})

	t.Run("empty markup yields empty result with provenance intact", func(t *testing.T) {
		t.Parallel()

		got := goquery.NewIndeed().Extract("")

		assert.Empty(t, got.Names)
		assert.Equal(t, companyscan.ProvenanceIndeed, got.Provenance)
	})
}
