// Package client talks to the remote code-execution endpoint: one POST
// per run, raw source text in, result text out.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"
)

var (
	DefaultTimeout = 20 * time.Second
)

// ErrEmptyResponse is returned when the endpoint answers 2xx with an empty
// body. The message doubles as the user-facing sentinel.
var ErrEmptyResponse = errors.New("Status error")

// Client submits code to a single execution endpoint URL.
type Client struct {
	url string
	hc  *http.Client
}

func New(url string) *Client {
	return &Client{url: url, hc: http.DefaultClient}
}

// URL returns the configured endpoint URL.
func (c *Client) URL() string { return c.url }

// Run POSTs the code as plain text and returns the response body. A 2xx
// response with an empty body is an error (ErrEmptyResponse). No retries;
// the only timeout is the transport-level DefaultTimeout.
func (c *Client) Run(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(code))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("X-Request-Id", xid.New().String())

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("POST %s: %s (%d)", c.url, strings.TrimSpace(string(b)), resp.StatusCode)
	}
	all, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", ErrEmptyResponse
	}
	return string(all), nil
}
