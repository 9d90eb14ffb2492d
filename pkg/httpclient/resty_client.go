package httpclient

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Option tweaks the underlying resty client.
type Option func(*options)

type options struct {
	connectTimeout time.Duration
}

// WithConnectTimeout bounds connection establishment (dial + TLS handshake)
// independently of the overall request timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = d
	}
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient with the specified timeout.
func NewRestyClient(timeout time.Duration, opts ...Option) *RestyClient {
	return &RestyClient{client: newRestyBaseClient(timeout, opts...)}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration, opts ...Option) *resty.Client {
	return newRestyBaseClient(timeout, opts...)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
func newRestyBaseClient(timeout time.Duration, opts ...Option) *resty.Client {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	c := resty.New()
	if o.connectTimeout > 0 {
		c.SetTransport(newTransport(o.connectTimeout))
	}
	c.SetTimeout(timeout)
	return c
}

func newTransport(connectTimeout time.Duration) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   connectTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Post performs an HTTP POST sending body verbatim.
func (r *RestyClient) Post(ctx context.Context, url string, headers map[string]string, body []byte) (Response, error) {
	req := r.client.R().SetContext(ctx).SetBody(body)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Post(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
