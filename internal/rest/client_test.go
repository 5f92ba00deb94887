package rest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// spyTransport records every executed request and returns a canned
// response, so tests can assert both what was sent and that nothing was
// sent at all.
type spyTransport struct {
	calls []*Request
	resp  *Response
	err   error
}

func (s *spyTransport) Execute(_ context.Context, req *Request) (*Response, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func ok(data string) *Response {
	return &Response{StatusCode: 200, Body: []byte(`{"success":true,"data":` + data + `}`)}
}

func TestCreateProjectFlow(t *testing.T) {
	spy := &spyTransport{resp: ok(`{"id":"1","namespace":"test","name":"test","flags":0,"icon":null}`)}
	c := NewClient("https://api.lawg.dev", spy)

	project, err := c.CreateProject(context.Background(), types.CreateProjectParams{
		Name:      "test",
		Namespace: "test",
	})
	require.NoError(t, err)

	require.Len(t, spy.calls, 1)
	req := spy.calls[0]
	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.lawg.dev/projects", req.URL)
	assert.JSONEq(t, `{"name":"test","namespace":"test"}`, string(req.Body))

	assert.Equal(t, "1", project.ID)
	assert.Equal(t, "test", project.Namespace)
	assert.Nil(t, project.Icon)
}

// Validation failures must happen before any network activity.
func TestCreateProjectValidatesBeforeNetwork(t *testing.T) {
	spy := &spyTransport{}
	c := NewClient("", spy)

	_, err := c.CreateProject(context.Background(), types.CreateProjectParams{Namespace: "test"})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "project.create.body", verr.Schema)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, "name", verr.Issues[0].Field)
	assert.Equal(t, types.CodeRequired, verr.Issues[0].Code)
	assert.Empty(t, spy.calls, "no request may be issued on validation failure")
}

func TestEmptySlugValidatesBeforeNetwork(t *testing.T) {
	spy := &spyTransport{}
	c := NewClient("", spy)

	_, err := c.FetchProject(context.Background(), "")

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "project.slug", verr.Schema)
	assert.Empty(t, spy.calls)
}

// An unset field is omitted from the body; an explicit null is encoded
// as JSON null.
func TestEditLogPatchSemantics(t *testing.T) {
	spy := &spyTransport{resp: ok(`{"id":"l1","project_id":"p1","feed_id":"f1","title":"t","description":null,"emoji":null,"color":null}`)}
	c := NewClient("https://api.lawg.dev", spy)

	_, err := c.EditLog(context.Background(), "test", "news", "l1", types.EditLogParams{
		Description: types.Null[string](),
	})
	require.NoError(t, err)

	require.Len(t, spy.calls, 1)
	req := spy.calls[0]
	assert.Equal(t, "PATCH", req.Method)
	assert.Equal(t, "https://api.lawg.dev/projects/test/feeds/news/logs/l1", req.URL)
	assert.Equal(t, `{"description":null}`, string(req.Body))
}

// An edit with every field unset still issues the request, with an
// empty JSON body.
func TestEditFeedAllUnset(t *testing.T) {
	spy := &spyTransport{resp: ok(`{"id":"f1","project_id":"p1","name":"news"}`)}
	c := NewClient("", spy)

	_, err := c.EditFeed(context.Background(), "test", "news", types.EditFeedParams{})
	require.NoError(t, err)
	require.Len(t, spy.calls, 1)
	assert.Equal(t, `{}`, string(spy.calls[0].Body))
}

func TestSlugEscapingInURLs(t *testing.T) {
	spy := &spyTransport{resp: ok(`{"id":"f1","project_id":"p1","name":"a b"}`)}
	c := NewClient("https://api.lawg.dev", spy)

	_, err := c.EditFeed(context.Background(), "my app", "feed/one", types.EditFeedParams{
		Name: types.Some("renamed"),
	})
	require.NoError(t, err)
	require.Len(t, spy.calls, 1)
	assert.Equal(t, "https://api.lawg.dev/projects/my%20app/feeds/feed%2Fone", spy.calls[0].URL)
}

func TestFetchLogsQueryAndNoBody(t *testing.T) {
	spy := &spyTransport{resp: ok(`[]`)}
	c := NewClient("https://api.lawg.dev", spy)

	logs, err := c.FetchLogs(context.Background(), "test", "news", types.LogFilter{
		Limit:  types.Some(25),
		Offset: types.Some(50),
	})
	require.NoError(t, err)
	assert.Empty(t, logs)

	require.Len(t, spy.calls, 1)
	req := spy.calls[0]
	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "https://api.lawg.dev/projects/test/feeds/news/logs?limit=25&offset=50", req.URL)
	assert.Nil(t, req.Body, "GET requests never carry a body")
}

func TestFetchLogsWithoutFilter(t *testing.T) {
	spy := &spyTransport{resp: ok(`[{"id":"l1","project_id":"p1","feed_id":"f1","title":"t"}]`)}
	c := NewClient("https://api.lawg.dev", spy)

	logs, err := c.FetchLogs(context.Background(), "test", "news", types.LogFilter{})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "l1", logs[0].ID)
	assert.Equal(t, "https://api.lawg.dev/projects/test/feeds/news/logs", spy.calls[0].URL)
}

func TestFetchLogsRejectsNegativeLimit(t *testing.T) {
	spy := &spyTransport{}
	c := NewClient("", spy)

	_, err := c.FetchLogs(context.Background(), "test", "news", types.LogFilter{
		Limit: types.Some(-1),
	})
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, types.CodeTooSmall, verr.Issues[0].Code)
	assert.Empty(t, spy.calls)
}

func TestDeleteFeedFlow(t *testing.T) {
	spy := &spyTransport{resp: &Response{StatusCode: 200, Body: []byte(`{"success":true}`)}}
	c := NewClient("https://api.lawg.dev", spy)

	err := c.DeleteFeed(context.Background(), "test", "news")
	require.NoError(t, err)

	require.Len(t, spy.calls, 1)
	req := spy.calls[0]
	assert.Equal(t, "DELETE", req.Method)
	assert.Equal(t, "https://api.lawg.dev/projects/test/feeds/news", req.URL)
	assert.Nil(t, req.Body, "DELETE requests never carry a body")
}

func TestNotFoundMapsToAPIError(t *testing.T) {
	spy := &spyTransport{resp: &Response{
		StatusCode: 404,
		Body:       []byte(`{"success":false,"error":"not_found"}`),
	}}
	c := NewClient("", spy)

	_, err := c.FetchProject(context.Background(), "missing")

	var apiErr *types.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "not_found", apiErr.Message)

	var verr *types.ValidationError
	assert.False(t, errors.As(err, &verr), "API errors must not surface as shape errors")
}

// Transport failures pass through unchanged so callers can match on
// their own error types.
func TestTransportErrorPropagatesUnwrapped(t *testing.T) {
	boom := errors.New("connection refused")
	spy := &spyTransport{err: boom}
	c := NewClient("", spy)

	_, err := c.FetchProject(context.Background(), "test")
	assert.Same(t, boom, err)
}

func TestEditInsightValueForms(t *testing.T) {
	tests := []struct {
		name     string
		params   types.EditInsightParams
		wantBody string
	}{
		{
			name:     "set",
			params:   types.EditInsightParams{Value: types.Some(types.SetValue(10))},
			wantBody: `{"value":{"set":10}}`,
		},
		{
			name:     "increment",
			params:   types.EditInsightParams{Value: types.Some(types.IncrementValue(-2.5))},
			wantBody: `{"value":{"increment":-2.5}}`,
		},
		{
			name:     "null resets",
			params:   types.EditInsightParams{Value: types.Null[types.InsightValue]()},
			wantBody: `{"value":null}`,
		},
		{
			name:     "title only",
			params:   types.EditInsightParams{Title: types.Some("Users")},
			wantBody: `{"title":"Users"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spyTransport{resp: ok(`{"id":"i1","project_id":"p1","title":"Users","value":10}`)}
			c := NewClient("", spy)

			_, err := c.EditInsight(context.Background(), "test", "i1", tt.params)
			require.NoError(t, err)
			require.Len(t, spy.calls, 1)
			assert.Equal(t, tt.wantBody, string(spy.calls[0].Body))
		})
	}
}

func TestEditInsightRejectsEmptyValueUpdate(t *testing.T) {
	spy := &spyTransport{}
	c := NewClient("", spy)

	_, err := c.EditInsight(context.Background(), "test", "i1", types.EditInsightParams{
		Value: types.Some(types.InsightValue{}),
	})
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, types.CodeInvalidPayload, verr.Issues[0].Code)
	assert.Empty(t, spy.calls)
}

func TestFetchInsightsManyValidation(t *testing.T) {
	spy := &spyTransport{resp: ok(`[{"id":"i1","project_id":"p1","title":"Users","value":12,"description":null,"emoji":null}]`)}
	c := NewClient("", spy)

	insights, err := c.FetchInsights(context.Background(), "test")
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, float64(12), insights[0].Value)

	// One malformed element fails the whole listing.
	spy.resp = ok(`[{"id":"i1","project_id":"p1","title":"Users","value":12},{"id":"i2"}]`)
	_, err = c.FetchInsights(context.Background(), "test")
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBaseURLTrailingSlashStripped(t *testing.T) {
	spy := &spyTransport{resp: &Response{StatusCode: 200, Body: []byte(`{"success":true}`)}}
	c := NewClient("https://api.lawg.dev/", spy)

	err := c.DeleteProject(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, "https://api.lawg.dev/projects/test", spy.calls[0].URL)
}
