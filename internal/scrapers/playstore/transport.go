package playstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"playstore-scraper/internal/components/assert"
	"playstore-scraper/internal/components/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// ThrottleConfig allows at most Limit requests every Interval. The zero value
// disables throttling.
type ThrottleConfig struct {
	Interval time.Duration `validate:"min=0"`
	Limit    int           `validate:"min=0"`
}

func (c *ThrottleConfig) enabled() bool {
	return c != nil && c.Interval > 0 && c.Limit > 0
}

// Transport sends a request and returns the raw response body.
//
// Errors caused by the response status must be (or wrap) a *StatusError.
type Transport interface {
	Send(ctx context.Context, req Request, throttle *ThrottleConfig) (string, error)
}

// StatusError is returned by a Transport when the server answered with an
// error status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

type RestyTransportOptions struct {
	// Timeout defaults to 30 seconds.
	Timeout time.Duration
	// CloudflareBypass wraps the http transport with a round tripper that
	// mimics the TLS and header fingerprint of a browser.
	CloudflareBypass bool
}

// RestyTransport is the Transport used outside of tests.
type RestyTransport struct {
	http       *resty.Client
	noRedirect *resty.Client
	tel        telemetry.API

	limitersLock sync.Mutex
	limiters     map[ThrottleConfig]*rate.Limiter
}

func newHttpClient(opts RestyTransportOptions, tel telemetry.API, policy resty.RedirectPolicy) *resty.Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	httpClient := resty.New()
	httpClient.SetTimeout(timeout)
	httpClient.SetRedirectPolicy(policy)
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	telemetry.InstrumentResty(httpClient, tel)
	return httpClient
}

func NewRestyTransport(opts RestyTransportOptions, tel telemetry.API) *RestyTransport {
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("transport", tel)

	return &RestyTransport{
		http:       newHttpClient(opts, tel, resty.FlexibleRedirectPolicy(10)),
		noRedirect: newHttpClient(opts, tel, resty.NoRedirectPolicy()),
		tel:        tel,
		limiters:   map[ThrottleConfig]*rate.Limiter{},
	}
}

// limiter returns the rate limiter for a throttle config, calls with equal
// configs share the same limiter so they share the same budget.
// Limiters are kept for the lifetime of the transport, one per distinct config.
func (t *RestyTransport) limiter(throttle *ThrottleConfig) *rate.Limiter {
	if !throttle.enabled() {
		return nil
	}

	t.limitersLock.Lock()
	defer t.limitersLock.Unlock()

	limiter, ok := t.limiters[*throttle]
	if ok {
		return limiter
	}
	// max burst = limit just means that a fresh limiter doesn't delay the
	// first `limit` requests
	limiter = rate.NewLimiter(
		rate.Every(throttle.Interval/time.Duration(throttle.Limit)),
		throttle.Limit,
	)
	t.limiters[*throttle] = limiter
	return limiter
}

func (t *RestyTransport) Send(ctx context.Context, req Request, throttle *ThrottleConfig) (string, error) {
	limiter := t.limiter(throttle)
	if limiter != nil {
		err := limiter.Wait(ctx)
		if err != nil {
			return "", fmt.Errorf("throttle: %w", err)
		}
	}

	client := t.http
	if !req.FollowRedirects {
		client = t.noRedirect
	}

	r := client.R().
		SetContext(ctx).
		SetHeaders(req.Headers)
	if req.Json {
		r.SetHeader("accept", "application/json")
	}
	if len(req.Form) > 0 {
		r.SetFormData(req.Form)
	}

	res, err := r.Execute(req.Method, req.Url)
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", &StatusError{
			Status: res.StatusCode(),
			Body:   res.String(),
		}
	}

	return res.String(), nil
}
