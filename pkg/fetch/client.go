// Package fetch implements HTTP retrieval of repository artifacts.
//
// Client is the production transport behind the resolver: it issues GET
// requests with a shared timeout, retries transient failures, and maps
// HTTP status codes onto the resolver's error model. Descriptor (POM)
// responses may be cached between runs; binary archives never are.
package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gavel-build/gavel/pkg/cache"
	"github.com/gavel-build/gavel/pkg/errors"
	"github.com/gavel-build/gavel/pkg/httputil"
)

const httpTimeout = 10 * time.Second

// Client fetches repository URLs over HTTP. It satisfies the resolver's
// URLFetcher contract: Fetch for text descriptors, FetchBytes for binary
// archives.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	headers map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithCache caches Fetch responses in c with the given TTL. FetchBytes
// responses are never cached regardless of this option.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cache = c
		cl.ttl = ttl
	}
}

// WithHeaders sets default headers applied to every request.
func WithHeaders(headers map[string]string) Option {
	return func(cl *Client) { cl.headers = headers }
}

// WithHTTPClient replaces the underlying HTTP client. Mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(cl *Client) { cl.http = h }
}

// NewClient creates a Client with a standard timeout and no caching.
func NewClient(opts ...Option) *Client {
	cl := &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Fetch performs a GET and returns the response body as text. Responses
// are cached under "pom:"+url when a cache backend is configured, so
// repeated runs skip the network for descriptors entirely.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	key := "pom:" + url
	if data, ok, _ := c.cache.Get(ctx, key); ok {
		return string(data), nil
	}

	data, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	_ = c.cache.Set(ctx, key, data, c.ttl)
	return string(data), nil
}

// FetchBytes performs a GET and returns the raw response body. Archives
// go straight to the extraction tree, so they bypass the cache.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		data, err = c.doRequest(ctx, url)
		return err
	})
	return data, err
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{
			Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url),
		}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, url); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httputil.RetryableError{
			Err: errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url),
		}
	}
	return data, nil
}

func checkStatus(code int, url string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeFileNotFound, "can't find %s", url)
	case code >= 500:
		return &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code),
		}
	default:
		return errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, code)
	}
}
