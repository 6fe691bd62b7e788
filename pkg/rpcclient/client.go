/*
Package rpcclient implements a typed client for the JSON-RPC interface of
a Nimiq node. One Client method corresponds to one remote operation; the
wire surface itself (method names, parameter order, result shapes) lives
in a static catalog, so the methods are thin typed wrappers over a single
generic call path.
*/
package rpcclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 4 * time.Second
)

// Client represents the middleman for executing JSON-RPC calls against a
// remote Nimiq node. Client holds no mutable state besides the request ID
// counter and is safe for use from multiple goroutines. It imposes no
// timeouts beyond the transport ones configured in Options and never
// retries a failed call.
type Client struct {
	cli        *http.Client
	endpoint   *url.URL
	ctx        context.Context
	opts       Options
	log        *zap.Logger
	authHeader string
	requestF   func(*nimrpc.Request) (*nimrpc.Response, error)

	latestReqID *atomic.Uint64
	// getNextRequestID returns an ID to be used for the subsequent request
	// creation. It is defined on Client, so that our testing code can
	// override this method for the sake of more predictable request ID
	// generation behavior.
	getNextRequestID func() uint64
}

// Options defines options for the RPC client. All values are optional. If
// any duration is not specified, a default of 4 seconds will be used.
type Options struct {
	// Username and Password are HTTP Basic auth credentials. When Username
	// is non-empty every request carries a constant Authorization header
	// computed once at construction.
	Username string
	Password string

	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// Logger, when set, receives a debug record per performed request.
	Logger *zap.Logger
}

// New returns a new Client ready to use.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return err
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl.ctx = ctx
	cl.cli = httpClient
	cl.endpoint = url
	cl.opts = opts
	cl.log = opts.Logger
	if cl.log == nil {
		cl.log = zap.NewNop()
	}
	if opts.Username != "" {
		creds := opts.Username + ":" + opts.Password
		cl.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}
	cl.latestReqID = atomic.NewUint64(0)
	cl.getNextRequestID = (cl).getRequestID
	cl.requestF = cl.makeHTTPRequest
	return nil
}

func (c *Client) getRequestID() uint64 {
	return c.latestReqID.Inc()
}

// Endpoint returns the client's endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// performCall is the single generic call path: it looks the operation up
// in the catalog, encodes the arguments positionally, performs the request
// and decodes the result into v (skipped when v is nil). Remote errors are
// returned without attempting decode.
func (c *Client) performCall(op Op, args []any, v any) error {
	ms, ok := catalog[op]
	if !ok {
		return fmt.Errorf("unknown operation %d", op)
	}
	params, err := encodeParams(ms, args)
	if err != nil {
		return err
	}
	return c.performRequest(ms.method, params, v)
}

func (c *Client) performRequest(method string, p []any, v any) error {
	if p == nil {
		p = []any{}
	}
	var r = nimrpc.Request{
		JSONRPC: nimrpc.JSONRPCVersion,
		Method:  method,
		Params:  p,
		ID:      c.getNextRequestID(),
	}

	start := time.Now()
	raw, err := c.requestF(&r)
	c.log.Debug("remote call performed",
		zap.String("method", method),
		zap.Duration("took", time.Since(start)),
		zap.Bool("failed", err != nil || (raw != nil && raw.Error != nil)))

	if raw != nil && raw.Error != nil {
		return raw.Error
	} else if err != nil {
		return err
	} else if raw == nil {
		return errors.New("no response returned")
	}
	if v == nil {
		// Methods like submitBlock have no result, a null one is fine.
		return nil
	}
	// A literal null result lands in raw.Result as the "null" token, treat
	// it the same as an absent one. Either way the payload fails the
	// declared result shape.
	if raw.Result == nil || bytes.Equal(raw.Result, []byte("null")) {
		return nimrpc.NewDecodeError(fmt.Sprintf("%T", v), errors.New("no result returned"))
	}
	if err := json.Unmarshal(raw.Result, v); err != nil {
		var de *nimrpc.DecodeError
		if errors.As(err, &de) {
			return err
		}
		return nimrpc.NewDecodeError(fmt.Sprintf("%T", v), err)
	}
	return nil
}

func (c *Client) makeHTTPRequest(r *nimrpc.Request) (*nimrpc.Response, error) {
	var (
		buf = new(bytes.Buffer)
		raw = new(nimrpc.Response)
	)

	if err := json.NewEncoder(buf).Encode(r); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(c.ctx, "POST", c.endpoint.String(), buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The node might send us a proper JSON anyway, so look there first and
	// if it parses, it has more relevant data than the HTTP error code.
	err = json.NewDecoder(resp.Body).Decode(raw)
	if err != nil {
		if resp.StatusCode != http.StatusOK {
			err = fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
		} else {
			err = fmt.Errorf("JSON decoding: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Ping attempts to create a connection to the endpoint and returns an
// error if there is any.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, defaultDialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
