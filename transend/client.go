package transend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/pkg/metricskey"
	"github.com/effective-security/xlog"
	"github.com/hashicorp/go-retryablehttp"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/transend-mcp", "transend")

const (
	// DefaultBaseURL is the Transend API endpoint used when Config.BaseURL is empty.
	DefaultBaseURL = "https://api.transend.us"
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "transend-mcp"

	// HeaderAPIKey carries Config.APIKey
	HeaderAPIKey = "X-Api-Key"
	// HeaderAPIToken carries Config.APIToken
	HeaderAPIToken = "X-Api-Token"
)

// Config specifies the API endpoint, credentials and transport policy.
type Config struct {
	BaseURL  string
	APIKey   string
	APIToken string
	// Timeout is the per-attempt HTTP timeout, zero means no timeout.
	Timeout time.Duration
	// RetryMax is the number of retries after a failed attempt.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
// A non-zero Config.Timeout is set on hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http.HTTPClient = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// Client is the Transend API client.
// It is safe for concurrent use and must not be modified after New returns.
type Client struct {
	baseURL   string
	apiKey    string
	apiToken  string
	userAgent string
	http      *retryablehttp.Client

	branch   *branchAPI
	product  *productAPI
	account  *accountAPI
	content  *contentAPI
	core     *coreAPI
	customer *customerAPI
	vehicle  *vehicleAPI
}

// ensure Client implements API
var _ API = (*Client)(nil)

// New returns a Client.
// The credentials are not validated here: the API rejects bad ones on the first call.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL: %s", base)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid base URL scheme: %q", base)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = leveledLogger{}
	rc.RetryMax = max(cfg.RetryMax, 0)
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	// return the last response, so the status is reported as APIError
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL:   strings.TrimSuffix(u.String(), "/"),
		apiKey:    cfg.APIKey,
		apiToken:  cfg.APIToken,
		userAgent: DefaultUserAgent,
		http:      rc,
	}
	for _, opt := range opts {
		opt(c)
	}
	// Config.Timeout applies to the client supplied by WithHTTPClient as well
	if cfg.Timeout > 0 {
		c.http.HTTPClient.Timeout = cfg.Timeout
	}

	c.branch = &branchAPI{c: c}
	c.product = &productAPI{c: c}
	c.account = &accountAPI{c: c}
	c.content = &contentAPI{c: c}
	c.core = &coreAPI{c: c}
	c.customer = &customerAPI{c: c}
	c.vehicle = &vehicleAPI{c: c}

	return c, nil
}

// BaseURL returns the API endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Branch() BranchAPI     { return c.branch }
func (c *Client) Product() ProductAPI   { return c.product }
func (c *Client) Account() AccountAPI   { return c.account }
func (c *Client) Content() ContentAPI   { return c.content }
func (c *Client) Core() CoreAPI         { return c.core }
func (c *Client) Customer() CustomerAPI { return c.customer }
func (c *Client) Vehicle() VehicleAPI   { return c.vehicle }

// request describes one API call
type request struct {
	// op is the operation name used for metrics and logs
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do executes the request and decodes a JSON response into out, if provided.
func (c *Client) do(ctx context.Context, r request, out any) error {
	started := time.Now()
	defer metricskey.PerfAPIRequest.MeasureSince(started, r.op)

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var rawBody any
	if r.body != nil {
		js, err := json.Marshal(r.body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s request", r.op)
		}
		rawBody = js
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, r.method, endpoint, rawBody)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderAPIToken, c.apiToken)
	if rawBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metricskey.StatsAPIRequestsFailed.IncrCounter(1, r.op)
		logger.ContextKV(ctx, xlog.DEBUG,
			"op", r.op,
			"status", "request_failed",
			"err", err.Error(),
		)
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metricskey.StatsAPIRequestsFailed.IncrCounter(1, r.op)
		return errors.Wrapf(err, "failed to read %s response", r.op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metricskey.StatsAPIRequestsFailed.IncrCounter(1, r.op)
		logger.ContextKV(ctx, xlog.DEBUG,
			"op", r.op,
			"status_code", resp.StatusCode,
		)
		return &APIError{
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}
	metricskey.StatsAPIRequestsSucceeded.IncrCounter(1, r.op)

	body = bytes.TrimSpace(body)
	if out == nil || len(body) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err = dec.Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", r.op)
	}
	return nil
}

// get returns the decoded response as is, whatever its JSON shape.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) (any, error) {
	var res any
	if err := c.do(ctx, request{op: op, method: http.MethodGet, path: path, query: query}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) send(ctx context.Context, op, method, path string, body any) (any, error) {
	var res any
	if err := c.do(ctx, request{op: op, method: method, path: path, body: body}, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// segment escapes a caller supplied value for use as a path segment
func segment(v string) string {
	return url.PathEscape(v)
}

// queryOf builds query values, skipping nil entries
func queryOf(kv ...any) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		switch v := kv[i+1].(type) {
		case *string:
			if v != nil {
				q.Set(key, *v)
			}
		case *bool:
			if v != nil {
				q.Set(key, strconv.FormatBool(*v))
			}
		case string:
			q.Set(key, v)
		case ID:
			q.Set(key, v.String())
		case int:
			q.Set(key, strconv.Itoa(v))
		}
	}
	return q
}
