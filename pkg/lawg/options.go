package lawg

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lawgdev/lawg-go/internal/rest"
)

type config struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     logrus.FieldLogger
	limiter    *rate.Limiter
	debug      bool

	// transport overrides the wire layer in this module's own tests.
	transport rest.Transport
}

// Option adjusts client construction.
type Option func(*config) error

// WithBaseURL points the client at a different API host, e.g. a staging
// deployment. A trailing slash is tolerated.
func WithBaseURL(u string) Option {
	return func(c *config) error {
		if u == "" {
			return fmt.Errorf("base URL is empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient supplies the *http.Client used for all requests. The
// client is used as given; pair with WithTimeout to bound calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) error {
		if hc == nil {
			return fmt.Errorf("http client is nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout bounds every request. It applies on top of the HTTP
// client in use without mutating a caller-supplied one.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return fmt.Errorf("timeout %v is not positive", d)
		}
		if c.httpClient == nil {
			c.httpClient = &http.Client{Timeout: d}
			return nil
		}
		clone := *c.httpClient
		clone.Timeout = d
		c.httpClient = &clone
		return nil
	}
}

// WithUserAgent replaces the default lawg-go/<version> User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *config) error {
		if ua == "" {
			return fmt.Errorf("user agent is empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithLogger routes wire dumps to the given logger. Dumps are emitted
// at debug level with the Authorization header redacted.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) error {
		if l == nil {
			return fmt.Errorf("logger is nil")
		}
		c.logger = l
		return nil
	}
}

// WithDebug turns on wire dumps to stderr. Ignored when WithLogger
// already supplied a destination.
func WithDebug() Option {
	return func(c *config) error {
		c.debug = true
		return nil
	}
}

// WithRateLimit caps outgoing requests at rps per second with the given
// burst. Calls beyond the limit block until a slot frees or the context
// is done.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) error {
		if rps <= 0 || burst < 1 {
			return fmt.Errorf("rate limit %v/%d is not positive", rps, burst)
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		return nil
	}
}

// withTransport swaps the wire layer; test use only.
func withTransport(t rest.Transport) Option {
	return func(c *config) error {
		c.transport = t
		return nil
	}
}
