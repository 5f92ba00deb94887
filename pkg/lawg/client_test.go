package lawg

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawgdev/lawg-go/pkg/types"
)

func TestNewClientRequiresToken(t *testing.T) {
	client, err := NewClient("")
	assert.Nil(t, client)
	assert.ErrorIs(t, err, types.ErrTokenEmpty)
}

func TestNewClientOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "empty base URL", opt: WithBaseURL("")},
		{name: "nil http client", opt: WithHTTPClient(nil)},
		{name: "zero timeout", opt: WithTimeout(0)},
		{name: "negative timeout", opt: WithTimeout(-time.Second)},
		{name: "empty user agent", opt: WithUserAgent("")},
		{name: "nil logger", opt: WithLogger(nil)},
		{name: "zero rate", opt: WithRateLimit(0, 1)},
		{name: "zero burst", opt: WithRateLimit(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient("token", tt.opt)
			assert.Nil(t, client)
			assert.Error(t, err)
		})
	}
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	hc := &http.Client{}
	_, err := NewClient("token", WithHTTPClient(hc), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Zero(t, hc.Timeout)
}

// TestClientDefaultWire drives a create through the real HTTP transport
// and checks the defaults: base URL, raw token auth, versioned agent.
func TestClientDefaultWire(t *testing.T) {
	mt := httpmock.NewMockTransport()
	var got *http.Request
	var gotBody []byte
	mt.RegisterResponder(http.MethodPost, "https://api.lawg.dev/projects",
		func(req *http.Request) (*http.Response, error) {
			got = req
			var err error
			gotBody, err = io.ReadAll(req.Body)
			require.NoError(t, err)
			return httpmock.NewStringResponse(http.StatusOK,
				`{"success":true,"data":{"id":"p1","namespace":"my-app","name":"My App","flags":0}}`), nil
		})

	client, err := NewClient("token-123", WithHTTPClient(&http.Client{Transport: mt}))
	require.NoError(t, err)

	project, err := client.CreateProject(context.Background(), types.CreateProjectParams{
		Name:      "My App",
		Namespace: "my-app",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-app", project.Namespace())
	assert.Equal(t, "My App", project.Record().Name)

	require.NotNil(t, got)
	assert.Equal(t, "token-123", got.Header.Get("Authorization"))
	assert.Equal(t, "lawg-go/"+Version, got.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get("X-Request-Id"))
	assert.JSONEq(t, `{"name":"My App","namespace":"my-app"}`, string(gotBody))
}

func TestWithBaseURLAndUserAgent(t *testing.T) {
	mt := httpmock.NewMockTransport()
	var agent string
	mt.RegisterResponder(http.MethodGet, "https://staging.lawg.dev/projects/my-app",
		func(req *http.Request) (*http.Response, error) {
			agent = req.Header.Get("User-Agent")
			return httpmock.NewStringResponse(http.StatusOK,
				`{"success":true,"data":{"id":"p1","namespace":"my-app","name":"My App","flags":0}}`), nil
		})

	client, err := NewClient("token",
		WithBaseURL("https://staging.lawg.dev/"),
		WithUserAgent("deploy-bot/2.1"),
		WithHTTPClient(&http.Client{Transport: mt}),
	)
	require.NoError(t, err)

	_, err = client.FetchProject(context.Background(), "my-app")
	require.NoError(t, err)
	assert.Equal(t, "deploy-bot/2.1", agent)
}

func TestClientAPIErrorOverWire(t *testing.T) {
	mt := httpmock.NewMockTransport()
	mt.RegisterResponder(http.MethodGet, "https://api.lawg.dev/projects/ghost",
		httpmock.NewStringResponder(http.StatusNotFound,
			`{"success":false,"error":{"code":"not_found","message":"project not found"}}`))

	client, err := NewClient("token", WithHTTPClient(&http.Client{Transport: mt}))
	require.NoError(t, err)

	_, err = client.FetchProject(context.Background(), "ghost")
	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "project not found", apiErr.Message)
}
