package rest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Transport executes one prepared request and returns the raw response.
// Implementations must be safe for concurrent use.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Response is the raw outcome of an executed request.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPTransport dispatches requests over net/http. It owns the wire
// concerns: authentication, content negotiation, per-request ids,
// optional client-side rate limiting, and debug dumps.
type HTTPTransport struct {
	Client    *http.Client       // nil means http.DefaultClient.
	Token     string             // Sent as the Authorization header value.
	UserAgent string
	Limiter   *rate.Limiter      // Optional; waited on before each call.
	Logger    logrus.FieldLogger // Optional; enables request/response dumps.
}

func (t *HTTPTransport) Execute(ctx context.Context, r *Request) (*Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", t.Token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if t.UserAgent != "" {
		req.Header.Set("User-Agent", t.UserAgent)
	}
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if t.Logger != nil {
		t.logRequest(req, r.Body)
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if t.Logger != nil {
		t.logResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// logRequest dumps the outgoing request with the Authorization header
// redacted. The body is appended from the prepared bytes so the real
// request body reader is never consumed.
func (t *HTTPTransport) logRequest(req *http.Request, body []byte) {
	clone := req.Clone(req.Context())
	clone.Body = nil
	clone.ContentLength = 0
	if clone.Header.Get("Authorization") != "" {
		clone.Header.Set("Authorization", "[redacted]")
	}
	dump, err := httputil.DumpRequestOut(clone, false)
	if err != nil {
		return
	}
	if body != nil {
		t.Logger.Debugf("request:\n%s%s", dump, body)
		return
	}
	t.Logger.Debugf("request:\n%s", dump)
}

// logResponse dumps the response; DumpResponse replaces the body reader,
// so the caller can still read it afterwards.
func (t *HTTPTransport) logResponse(resp *http.Response) {
	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return
	}
	t.Logger.Debugf("response:\n%s", dump)
}
