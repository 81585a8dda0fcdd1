package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
	"github.com/sethvargo/go-retry"
)

var _ helpchunk.Fetcher = (*RetryFetcher)(nil)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryPolicy controls how failed fetches are retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below one are treated as one.
	MaxAttempts int

	// Delay is the fixed pause between attempts.
	Delay time.Duration

	// Retryable reports whether a failed attempt may be retried.
	// A nil predicate retries every error.
	Retryable func(err error) bool
}

// DefaultRetryPolicy returns the policy used for document fetches:
// three attempts, three seconds apart, every error retryable.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delay:       3 * time.Second,
	}
}

func (p RetryPolicy) attempts() int {
	return max(p.MaxAttempts, 1)
}

func (p RetryPolicy) retryable(err error) bool {
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}

func (p RetryPolicy) backoff() retry.Backoff {
	delay := max(p.Delay, 0)
	constant := retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	})
	return retry.WithMaxRetries(uint64(p.attempts()-1), constant)
}

// Fetch calls fetch until it succeeds, the error is not retryable, the
// attempts are exhausted, or ctx is done. Every failed attempt except the
// last is logged as a warning. The returned error has code EFETCH and
// wraps the error of the last attempt.
func (p RetryPolicy) Fetch(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxAttempts := p.attempts()

	var body string
	attempt := 0
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attempt++
		b, err := fetch(ctx, url)
		if err == nil {
			body = b
			return nil
		}
		if attempt >= maxAttempts || !p.retryable(err) {
			return err
		}
		logger.Warn("fetch attempt failed",
			"url", url,
			"attempt", attempt,
			"max", maxAttempts,
			"err", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return "", helpchunk.WrapError(helpchunk.EFETCH, err, "fetch %s failed after %d attempt(s)", url, attempt)
	}
	return body, nil
}

// RetryFetcher wraps a Fetcher with a RetryPolicy.
type RetryFetcher struct {
	inner  helpchunk.Fetcher
	policy RetryPolicy
	logger *slog.Logger
}

// NewRetryFetcher returns a Fetcher that retries inner according to policy.
func NewRetryFetcher(inner helpchunk.Fetcher, policy RetryPolicy, logger *slog.Logger) *RetryFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RetryFetcher{
		inner:  inner,
		policy: policy,
		logger: logger,
	}
}

// Fetch retrieves url, retrying failed attempts.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.policy.Fetch(ctx, url, f.inner.Fetch, f.logger)
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.inner.Close()
}
