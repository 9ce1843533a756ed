package companyscan

import "context"

// Fetcher retrieves page markup for a URL or local file reference.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Limiter throttles outgoing requests per domain.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
