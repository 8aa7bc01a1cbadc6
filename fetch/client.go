//go:build js && wasm

package fetch

import (
	"log/slog"
	"sync"
	"syscall/js"

	"jsfetch/promise"
	"jsfetch/request"
	"jsfetch/response"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// ErrNoFetch is returned when the environment exposes no fetch function.
var ErrNoFetch = errors.New("fetch is not available in this environment")

// Options configures a Client.
type Options struct {
	// FetchFn overrides the global fetch function. Useful for pages
	// that shim fetch, or for workers with a non-global binding.
	FetchFn js.Value
}

type Client struct {
	fetchFn js.Value

	logger *slog.Logger
	clock  clock.Clock
}

// New builds a Client around the environment's fetch.
func New(logger *slog.Logger, clock clock.Clock, opts Options) (*Client, error) {
	fetchFn := opts.FetchFn
	if fetchFn.IsUndefined() {
		fetchFn = js.Global().Get("fetch")
	}
	if fetchFn.Type() != js.TypeFunction {
		return nil, ErrNoFetch
	}

	return &Client{
		fetchFn: fetchFn,
		logger:  logger,
		clock:   clock,
	}, nil
}

// Do sends req and blocks until the fetch settles. On rejection the
// returned error carries the opaque rejection payload as a
// *promise.RejectionError in its chain.
func (c *Client) Do(req request.Request) (*response.Response, error) {
	handle, err := buildNative(req)
	if err != nil {
		return nil, errors.Wrap(err, "building native request")
	}

	start := c.clock.Now()
	settled, err := promise.AwaitJS(c.fetchFn.Invoke(handle))
	elapsed := c.clock.Since(start)
	if err != nil {
		c.logger.Debug("fetch rejected",
			slog.String("url", req.URL),
			slog.Duration("elapsed", elapsed),
		)
		return nil, errors.Wrap(err, "awaiting fetch settlement")
	}

	res := response.From(settled)
	c.logger.Debug("fetch settled",
		slog.String("url", req.URL),
		slog.Int("status", res.StatusCode()),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

// Get sends a GET request, overriding any method set in opts.
func (c *Client) Get(url string, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodGet
	return c.Do(request.New(url, opts))
}

// Head sends a HEAD request, overriding any method set in opts.
func (c *Client) Head(url string, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodHead
	return c.Do(request.New(url, opts))
}

// Delete sends a DELETE request, overriding any method set in opts.
func (c *Client) Delete(url string, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodDelete
	return c.Do(request.New(url, opts))
}

// Post sends a POST request carrying body, overriding any method and
// body set in opts.
func (c *Client) Post(url string, body any, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodPost
	opts.Body = body
	return c.Do(request.New(url, opts))
}

// Put sends a PUT request carrying body, overriding any method and body
// set in opts.
func (c *Client) Put(url string, body any, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodPut
	opts.Body = body
	return c.Do(request.New(url, opts))
}

// Patch sends a PATCH request carrying body, overriding any method and
// body set in opts.
func (c *Client) Patch(url string, body any, opts request.Options) (*response.Response, error) {
	opts.Method = request.MethodPatch
	opts.Body = body
	return c.Do(request.New(url, opts))
}

var defaultClient struct {
	once sync.Once
	c    *Client
	err  error
}

// Fetch sends one request through a lazily built default client: the
// global fetch, the default slog logger and the real clock.
func Fetch(url string, opts request.Options) (*response.Response, error) {
	defaultClient.once.Do(func() {
		defaultClient.c, defaultClient.err = New(slog.Default(), clock.New(), Options{})
	})
	if defaultClient.err != nil {
		return nil, defaultClient.err
	}

	return defaultClient.c.Do(request.New(url, opts))
}
