package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBackoffBase = time.Second

// Client issues completion requests through a Provider with bounded retry.
// Network failures, non-2xx statuses and bodies that are not JSON at the top
// level are all treated as transient and retried the same way.
type Client struct {
	http     *resty.Client
	provider Provider
	retry    RetryPolicy
}

// NewClient builds a completion client. The timeout bounds each individual
// attempt; the retry budget bounds total latency on top of that.
func NewClient(provider Provider, timeout time.Duration, maxAttempts int) *Client {
	return &Client{
		http:     resty.New().SetTimeout(timeout),
		provider: provider,
		retry: RetryPolicy{
			MaxAttempts: maxAttempts,
			BaseDelay:   defaultBackoffBase,
		},
	}
}

// Complete runs one instruction against the upstream API and returns the raw
// response body. The body is only guaranteed to be valid top-level JSON; its
// shape is the provider's and stays untrusted until validated.
func (c *Client) Complete(ctx context.Context, inst Instruction) ([]byte, error) {
	url, headers, body := c.provider.Request(inst)

	var raw []byte
	err := c.retry.Do(ctx, func(attempt int) error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeaders(headers).
			SetBody(body).
			Post(url)
		switch {
		case err != nil:
		case resp.IsError():
			err = fmt.Errorf("upstream status %s", resp.Status())
		case !json.Valid(resp.Body()):
			err = errors.New("upstream body is not valid JSON")
		default:
			raw = resp.Body()
			return nil
		}
		log.Printf("llm: %s attempt %d failed: %v", c.provider.Name(), attempt, err)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return raw, nil
}

// ExtractText delegates to the provider's envelope adapter so callers can
// hold a single value for both the request and the normalization side.
func (c *Client) ExtractText(raw []byte) (string, error) {
	return c.provider.ExtractText(raw)
}
