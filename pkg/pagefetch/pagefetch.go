// Package pagefetch implements the page-fetch collaborator: given a
// username it returns the profile page's raw markup plus whatever declared
// fields sit in the markup itself. The detection core never imports this
// package; callers wire it in at the edge and translate its errors into
// typed Unknown results before invoking detection.
package pagefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/codeGROOVE-dev/retry"
)

// Collaborator faults the caller maps to FAILED_FETCH / ERROR results.
var (
	ErrFetchFailed = errors.New("page fetch failed")
	ErrParseFailed = errors.New("page parse failed")
)

const (
	defaultBaseURL = "https://www.tiktok.com"
	maxBodyBytes   = 2 << 20 // profile pages past 2MB are not worth parsing
)

var (
	htmlLangPattern = regexp.MustCompile(`<html[^>]*\slang="([A-Za-z-]+)"`)
	regionPattern   = regexp.MustCompile(`"region"\s*:\s*"([A-Za-z]{2})"`)
)

// Page is the collaborator's result: raw markup plus declared fields.
type Page struct {
	Username string
	Markup   string
	Region   string // declared region from embedded metadata, or ""
	Language string // page language tag, or ""
	BioText  string // readable text rendering of the markup
}

// Fetcher is the collaborator interface the calling layer depends on.
type Fetcher interface {
	Fetch(ctx context.Context, username string) (*Page, error)
}

var _ Fetcher = (*Client)(nil)

// Client fetches profile pages over HTTP with retries.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different host, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a page-fetch client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     slog.Default(),
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the profile page for a username. Transient failures are
// retried with backoff and jitter; a 4xx other than 429 fails immediately.
func (c *Client) Fetch(ctx context.Context, username string) (*Page, error) {
	url := fmt.Sprintf("%s/@%s", c.baseURL, strings.TrimPrefix(username, "@"))

	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close() //nolint:errcheck // read-only body
			switch {
			case resp.StatusCode == http.StatusOK:
			case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
				return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
			default:
				return retry.Unrecoverable(fmt.Errorf("HTTP %d from %s", resp.StatusCode, url))
			}
			body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(3*time.Second),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.MaxJitter(100*time.Millisecond),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying page fetch", "attempt", n+1, "url", url, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, username, err)
	}

	markup := string(body)
	page := &Page{
		Username: strings.TrimPrefix(username, "@"),
		Markup:   markup,
	}
	if m := regionPattern.FindStringSubmatch(markup); m != nil {
		page.Region = strings.ToUpper(m[1])
	}
	if m := htmlLangPattern.FindStringSubmatch(markup); m != nil {
		page.Language = m[1]
	}

	text, err := md.ConvertString(markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, username, err)
	}
	page.BioText = text

	c.logger.Debug("fetched profile page",
		"username", page.Username,
		"bytes", len(body),
		"region", page.Region,
		"language", page.Language)
	return page, nil
}
