package go_openrpc_near

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Option configures a Client at construction.
type Option func(*options)

type options struct {
	httpClient *http.Client
	header     http.Header
	logger     logrus.FieldLogger
}

func newOptions(opts []Option) *options {
	o := &options{
		httpClient: http.DefaultClient,
		header:     make(http.Header),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithHTTPClient sets the client used for every request.
// A nil client leaves http.DefaultClient in place.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}

// WithHeader adds a header to every request, eg. an API key required by
// a hosted RPC provider.
func WithHeader(key, value string) Option {
	return func(o *options) { o.header.Add(key, value) }
}

// WithLogger enables request tracing at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}
