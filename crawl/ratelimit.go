package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/helpchunk"
	"golang.org/x/time/rate"
)

var _ helpchunk.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter caps the request rate per host with one token bucket each.
// Host names are compared case-insensitively. A non-positive rate disables
// limiting.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter returns a limiter allowing rps requests per second to
// each host, with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := strings.ToLower(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
