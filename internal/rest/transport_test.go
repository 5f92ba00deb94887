package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func okServer(t *testing.T, capture func(r *http.Request, body []byte)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if capture != nil {
			capture(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPTransportHeaders(t *testing.T) {
	var header http.Header
	var body []byte
	srv := okServer(t, func(r *http.Request, b []byte) {
		header = r.Header.Clone()
		body = b
	})

	tr := &HTTPTransport{Client: srv.Client(), Token: "token-123", UserAgent: "lawg-go/0.1.0"}
	resp, err := tr.Execute(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/projects",
		Body:   []byte(`{"name":"test","namespace":"test"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	assert.Equal(t, "token-123", header.Get("Authorization"), "raw token, no scheme prefix")
	assert.Equal(t, "lawg-go/0.1.0", header.Get("User-Agent"))
	assert.NotEmpty(t, header.Get("X-Request-Id"))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"test","namespace":"test"}`, string(body))
}

func TestHTTPTransportNoContentTypeWithoutBody(t *testing.T) {
	var header http.Header
	srv := okServer(t, func(r *http.Request, _ []byte) {
		header = r.Header.Clone()
	})

	tr := &HTTPTransport{Client: srv.Client(), Token: "token-123"}
	_, err := tr.Execute(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL + "/projects/test"})
	require.NoError(t, err)
	assert.Empty(t, header.Get("Content-Type"), "body-less requests carry no Content-Type")
}

func TestHTTPTransportRequestIDsAreFresh(t *testing.T) {
	var mu sync.Mutex
	var ids []string
	srv := okServer(t, func(r *http.Request, _ []byte) {
		mu.Lock()
		ids = append(ids, r.Header.Get("X-Request-Id"))
		mu.Unlock()
	})

	tr := &HTTPTransport{Client: srv.Client()}
	for range 2 {
		_, err := tr.Execute(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
		require.NoError(t, err)
	}
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1], "every request gets its own id")
}

func TestHTTPTransportRateLimiterHonorsContext(t *testing.T) {
	srv := okServer(t, nil)

	tr := &HTTPTransport{
		Client:  srv.Client(),
		Limiter: rate.NewLimiter(rate.Every(time.Hour), 1),
	}

	_, err := tr.Execute(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
	require.NoError(t, err, "first call spends the only token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.Execute(ctx, &Request{Method: http.MethodGet, URL: srv.URL})
	assert.Error(t, err, "second call must not wait out the limiter with a dead context")
}

func TestHTTPTransportDebugRedactsToken(t *testing.T) {
	srv := okServer(t, nil)

	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tr := &HTTPTransport{Client: srv.Client(), Token: "secret-token", Logger: logger}
	_, err := tr.Execute(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/projects",
		Body:   []byte(`{"name":"x","namespace":"x"}`),
	})
	require.NoError(t, err)

	require.NotEmpty(t, hook.Entries)
	var joined strings.Builder
	for _, entry := range hook.AllEntries() {
		joined.WriteString(entry.Message)
	}
	dump := joined.String()
	assert.Contains(t, dump, "[redacted]")
	assert.NotContains(t, dump, "secret-token")
	assert.Contains(t, dump, `{"name":"x","namespace":"x"}`, "request body appears in the dump")
	assert.Contains(t, dump, "success", "response body appears in the dump")
}

func TestHTTPTransportConcurrentUse(t *testing.T) {
	srv := okServer(t, nil)
	tr := &HTTPTransport{Client: srv.Client(), Token: "token"}

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tr.Execute(context.Background(), &Request{Method: http.MethodGet, URL: srv.URL})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
