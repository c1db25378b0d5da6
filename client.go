package go_openrpc_near

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/rpc/v2/json2"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const jsonrpcVersion = "2.0"

var ErrInvalidEndpoint = errors.New("invalid endpoint")

// Client calls the JSON-RPC API of a single NEAR node. It is safe for
// concurrent use; configuration is fixed at construction.
type Client struct {
	endpoint   string
	httpClient *http.Client
	header     http.Header
	logger     logrus.FieldLogger
}

// New returns a client for an explicit endpoint URL.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidEndpoint, endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q: missing host", ErrInvalidEndpoint, endpoint)
	}
	o := newOptions(opts)
	return &Client{
		endpoint:   u.String(),
		httpClient: o.httpClient,
		header:     o.header,
		logger:     o.logger,
	}, nil
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type response struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Call invokes method with params and decodes the result into result.
// A nil params sends an empty object. A nil result discards the result.
func (c *Client) Call(ctx context.Context, method string, params, result interface{}) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("encode %s params: %w", method, err)
	}
	// The codec picks the request id; the reply must echo it.
	id := gjson.GetBytes(body, "id").Uint()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "new request", URL: c.endpoint, Err: err}
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	c.trace(method, id).Debug("Sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "post", URL: c.endpoint, Err: err}
	}
	defer cleanlyCloseBody(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read response", URL: c.endpoint, Err: err}
	}
	c.trace(method, id).WithFields(logrus.Fields{
		"status":  resp.StatusCode,
		"bytes":   len(raw),
		"elapsed": time.Since(started),
	}).Debug("Received response")

	res, err := decodeResponse(resp.StatusCode, raw, id)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(res, result); err != nil {
		return &DecodeError{Method: method, Err: err}
	}
	return nil
}

func decodeResponse(status int, raw []byte, id uint64) (json.RawMessage, error) {
	var env response
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ProtocolError{StatusCode: status, Body: raw, Err: fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)}
	}
	if env.Version != jsonrpcVersion {
		return nil, &ProtocolError{StatusCode: status, Body: raw, Err: fmt.Errorf("%w: jsonrpc %q", ErrMalformedEnvelope, env.Version)}
	}
	// Nodes answer some errors with a non-2xx status and a full envelope.
	if env.Error != nil {
		return nil, env.Error
	}
	if status < 200 || status > 299 {
		return nil, &ProtocolError{StatusCode: status, Body: raw, Err: fmt.Errorf("unexpected status %s", http.StatusText(status))}
	}
	if !sameID(env.ID, id) {
		return nil, &ProtocolError{StatusCode: status, Body: raw, Err: fmt.Errorf("%w: id %s, want %d", ErrMalformedEnvelope, env.ID, id)}
	}
	if len(env.Result) == 0 {
		return nil, &ProtocolError{StatusCode: status, Body: raw, Err: json2.ErrNullResult}
	}
	return env.Result, nil
}

// sameID accepts the id echoed as a number or a string.
func sameID(got json.RawMessage, want uint64) bool {
	s := strings.Trim(string(got), `"`)
	return s == strconv.FormatUint(want, 10)
}

func (c *Client) trace(method string, id uint64) logrus.FieldLogger {
	if c.logger == nil {
		return discard
	}
	return c.logger.WithFields(logrus.Fields{
		"url":    c.endpoint,
		"method": method,
		"id":     id,
	})
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// cleanlyCloseBody drains the body so the connection can be reused.
func cleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
