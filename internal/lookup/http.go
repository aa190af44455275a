package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"anagram/internal/domain"
	"anagram/internal/logger"
)

// HTTP looks words up through a lookupd service.
type HTTP struct {
	Base string

	client *retryablehttp.Client
	log    logger.Logger
}

var _ domain.Lookuper = (*HTTP)(nil)

type HTTPOption func(*HTTP)

// WithRetries sets how many times a failed request is retried. The default
// is 0.
func WithRetries(n int) HTTPOption {
	return func(c *HTTP) {
		c.client.RetryMax = n
	}
}

// WithTimeout bounds each request, retries included. The default is no limit.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTP) {
		c.client.HTTPClient.Timeout = d
	}
}

func WithHTTPLogger(l logger.Logger) HTTPOption {
	return func(c *HTTP) {
		c.log = l
		c.client.Logger = leveledLogger{l}
	}
}

// WithHTTPClient replaces the transport used underneath the retrying client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTP) {
		c.client.HTTPClient = hc
	}
}

func NewHTTP(base string, opts ...HTTPOption) *HTTP {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 0
	rc.RetryWaitMin = 50 * time.Millisecond
	rc.RetryWaitMax = time.Second
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &HTTP{
		Base:   strings.TrimRight(base, "/"),
		client: rc,
		log:    logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTP) Lookup(ctx context.Context, word string) (domain.LookupResult, error) {
	var out domain.LookupResponse
	if err := c.getJSON(ctx, "/lookup?word="+url.QueryEscape(word), &out); err != nil {
		return domain.LookupResult{}, err
	}
	if out.Word != word {
		return domain.LookupResult{}, fmt.Errorf("lookup get: answer for %q, asked for %q", out.Word, word)
	}
	return domain.LookupResult{Word: word, Membership: domain.MembershipOf(out.IsAWord)}, nil
}

// Health fetches the service's /healthz document.
func (c *HTTP) Health(ctx context.Context) (domain.HealthResponse, error) {
	var out domain.HealthResponse
	err := c.getJSON(ctx, "/healthz", &out)
	return out, err
}

// Ping waits, with exponential backoff, until the service reports SERVING or
// maxWait elapses.
func (c *HTTP) Ping(ctx context.Context, maxWait time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = maxWait

	attempt := 1
	err := backoff.Retry(func() error {
		h, err := c.Health(ctx)
		if err == nil && h.Status != "SERVING" {
			err = fmt.Errorf("status %q", h.Status)
		}
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			c.log.Info("waiting for the lookup service", zap.String("url", c.Base), zap.Int("attempt", attempt))
			attempt++
			return err
		}
		return nil
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return fmt.Errorf("lookup service at %s not ready: %w", c.Base, err)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, Status: resp.Status, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("lookup get %s: decoding body: %w", path, err)
	}
	return nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path   string
	Status string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lookup get %s: %s", e.Path, e.Status)
	}
	return fmt.Sprintf("lookup get %s: %s: %s", e.Path, e.Status, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// leveledLogger routes retryablehttp's messages into our logger.
type leveledLogger struct {
	l logger.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (a leveledLogger) Error(msg string, kv ...any) { a.l.Error(msg, fields(kv)...) }
func (a leveledLogger) Info(msg string, kv ...any)  { a.l.Debug(msg, fields(kv)...) }
func (a leveledLogger) Debug(msg string, kv ...any) { a.l.Debug(msg, fields(kv)...) }
func (a leveledLogger) Warn(msg string, kv ...any)  { a.l.Warn(msg, fields(kv)...) }

func fields(kv []any) []zap.Field {
	out := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		out = append(out, zap.Any(key, kv[i+1]))
	}
	return out
}
