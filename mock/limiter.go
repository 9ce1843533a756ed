package mock

import (
	"context"

	"github.com/fwojciec/companyscan"
)

var _ companyscan.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of companyscan.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *Limiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
