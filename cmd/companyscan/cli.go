package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fwojciec/companyscan"
)

// Dependencies holds all services the run command needs.
type Dependencies struct {
	Logger    zerolog.Logger
	Fetcher   companyscan.Fetcher
	Extractor companyscan.Extractor
	Limiter   companyscan.Limiter
}

// Ensure CompositeFetcher implements companyscan.Fetcher at compile time.
var _ companyscan.Fetcher = (*CompositeFetcher)(nil)

// CompositeFetcher routes local snapshot references to the filesystem
// fetcher and everything else to the HTTP fetcher.
type CompositeFetcher struct {
	remote companyscan.Fetcher
	local  companyscan.Fetcher
}

// NewCompositeFetcher creates a new CompositeFetcher.
func NewCompositeFetcher(remote, local companyscan.Fetcher) *CompositeFetcher {
	return &CompositeFetcher{remote: remote, local: local}
}

// Fetch implements companyscan.Fetcher.
func (f *CompositeFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	if companyscan.IsLocalRef(ref) {
		return f.local.Fetch(ctx, ref)
	}
	return f.remote.Fetch(ctx, ref)
}
