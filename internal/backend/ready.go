package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// Ping issues one cheap listing call and reports whether the backend answered 2xx.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.http.Get(ctx, "/shops?page=0&size=1")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return newAPIError("ping", resp)
	}
	return nil
}

// WaitReady polls Ping with exponential backoff until the backend answers or
// maxWait elapses. Only used at startup; listing calls are never retried.
func (c *Client) WaitReady(ctx context.Context, maxWait time.Duration) error {
	if maxWait <= 0 {
		maxWait = 30 * time.Second
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = maxWait

	attempt := 0
	op := func() error {
		attempt++
		return c.Ping(ctx)
	}
	notify := func(err error, next time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("retry_in", next).
			Str("base_url", c.http.BaseURL()).
			Msg("backend not ready")
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return fmt.Errorf("backend not ready after %d attempts: %w", attempt, err)
	}
	log.Info().Int("attempts", attempt).Msg("backend ready")
	return nil
}
