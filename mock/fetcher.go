// Package mock provides function-field mock implementations of
// companyscan interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/companyscan"
)

var _ companyscan.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of companyscan.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
