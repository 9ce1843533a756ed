// Package fs provides a companyscan.Fetcher for locally saved HTML
// snapshots, used to bypass login walls on sites that block plain HTTP.
package fs

import (
	"context"
	"os"
	"strings"

	"github.com/fwojciec/companyscan"
)

// Ensure Fetcher implements companyscan.Fetcher at compile time.
var _ companyscan.Fetcher = (*Fetcher)(nil)

// Fetcher reads markup from local files referenced by bare paths or
// file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new filesystem Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file at ref. Returns ENOTFOUND when the file does not
// exist.
func (f *Fetcher) Fetch(_ context.Context, ref string) (string, error) {
	path := ref
	if strings.HasPrefix(strings.ToLower(ref), "file://") {
		path = ref[len("file://"):]
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", companyscan.Errorf(companyscan.ENOTFOUND, "local file not found: %s", path)
		}
		return "", err
	}

	return string(b), nil
}
