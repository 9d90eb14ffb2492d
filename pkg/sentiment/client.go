package sentiment

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Adda-Baaj/sentiment-client/pkg/httpclient"
)

const (
	DefaultEndpointURL    = "http://localhost:5000/api/spring-sentiment"
	DefaultConnectTimeout = 10 * time.Second

	contentTypeJSON = "application/json"
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	EndpointURL    string
	ConnectTimeout time.Duration
	// RequestTimeout bounds the whole exchange; zero means ConnectTimeout.
	RequestTimeout time.Duration
	Escaping       EscapeMode
	Headers        map[string]string
}

func (o Options) withDefaults() Options {
	o.EndpointURL = strings.TrimSpace(o.EndpointURL)
	if o.EndpointURL == "" {
		o.EndpointURL = DefaultEndpointURL
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = o.ConnectTimeout
	}
	if o.Escaping == "" {
		o.Escaping = EscapeJSON
	}
	return o
}

// Client sends texts to the sentiment endpoint. It keeps no per-call state and
// is safe for concurrent use.
type Client struct {
	opts    Options
	headers map[string]string
	http    httpclient.Client
	log     Logger
}

// New builds a Client backed by a resty transport.
func New(opts Options, log Logger) *Client {
	opts = opts.withDefaults()
	transport := httpclient.NewRestyClient(opts.RequestTimeout, httpclient.WithConnectTimeout(opts.ConnectTimeout))
	return NewWithHTTPClient(opts, transport, log)
}

// NewWithHTTPClient builds a Client on top of the provided transport.
func NewWithHTTPClient(opts Options, client httpclient.Client, log Logger) *Client {
	opts = opts.withDefaults()

	headers := make(map[string]string, len(opts.Headers)+1)
	for k, v := range opts.Headers {
		if k = strings.TrimSpace(k); k != "" {
			headers[http.CanonicalHeaderKey(k)] = v
		}
	}
	headers["Content-Type"] = contentTypeJSON

	return &Client{
		opts:    opts,
		headers: headers,
		http:    client,
		log:     ensureLogger(log),
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.opts.EndpointURL }

// AnalyzeSentiment posts text to the endpoint and returns the raw body of a
// 200 response. Any other status yields a *CommunicationError; transport
// failures yield *TransportError, or *InterruptionError when ctx was cancelled.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	body, err := BuildRequestBody(text, c.opts.Escaping)
	if err != nil {
		return "", err
	}

	start := time.Now()
	c.log.DebugObj("sentiment request", "sentiment_request", map[string]any{
		"endpoint":   c.opts.EndpointURL,
		"text_bytes": len(text),
		"escaping":   string(c.opts.Escaping),
	})

	resp, err := c.http.Post(ctx, c.opts.EndpointURL, c.headers, body)
	if err != nil {
		err = c.classify(ctx, err)
		c.log.WarnObj("sentiment request failed", "sentiment_error", map[string]any{
			"endpoint":   c.opts.EndpointURL,
			"error":      err.Error(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		ce := newCommunicationError(resp.StatusCode(), resp.Body())
		c.log.WarnObj("sentiment endpoint rejected request", "sentiment_error", map[string]any{
			"endpoint":   c.opts.EndpointURL,
			"status":     ce.StatusCode,
			"message":    ce.Message,
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
		return "", ce
	}

	c.log.DebugObj("sentiment response", "sentiment_response", map[string]any{
		"endpoint":   c.opts.EndpointURL,
		"body_bytes": len(resp.Body()),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return string(resp.Body()), nil
}

// Analyze runs AnalyzeSentiment and decodes the response into a Result.
func (c *Client) Analyze(ctx context.Context, text string) (Result, error) {
	raw, err := c.AnalyzeSentiment(ctx, text)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(raw)
}

func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return &InterruptionError{Err: err}
	}
	return &TransportError{Endpoint: c.opts.EndpointURL, Err: err}
}

var (
	defaultClient     *Client
	defaultClientOnce sync.Once
)

// Default returns the process-wide client built from default options.
func Default() *Client {
	defaultClientOnce.Do(func() {
		defaultClient = New(Options{}, nil)
	})
	return defaultClient
}

// AnalyzeSentiment calls the endpoint through the default client.
func AnalyzeSentiment(ctx context.Context, text string) (string, error) {
	return Default().AnalyzeSentiment(ctx, text)
}
