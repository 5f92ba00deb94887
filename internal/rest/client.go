// Package rest implements the lawg API core: schema enforcement,
// request construction, transport dispatch, and response unwrapping.
// The core is stateless apart from immutable configuration; it returns
// plain records and never tracks object lifecycle.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.lawg.dev"

// Client composes the schema layer, the request builder, the response
// unwrapper, and a Transport into per-resource operation sets. Safe for
// concurrent use.
type Client struct {
	baseURL   string
	transport Transport
}

// NewClient returns a core client that dispatches through the given
// transport. The base URL must not include a trailing slash; one is
// stripped if present.
func NewClient(baseURL string, transport Transport) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		transport: transport,
	}
}

// callSpec describes one operation: its route, the slug, body, and query
// data with their schemas, and the expected response payload shape.
// A zero response schema means the operation returns no payload.
type callSpec struct {
	route       Route
	slugs       map[string]string
	slugSchema  schema.Schema
	body        map[string]any
	bodySchema  schema.Schema
	query       map[string]any
	querySchema schema.Schema
	response    schema.Schema
	many        bool
}

// call runs the full pipeline for one operation: validate slugs, body,
// and query, build the request, execute it, and unwrap the response.
// Exactly one network request is issued; all validation failures happen
// before it, and transport errors propagate unchanged.
func (c *Client) call(ctx context.Context, spec callSpec) (json.RawMessage, error) {
	req, err := c.prepare(spec)
	if err != nil {
		return nil, err
	}
	resp, err := c.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return unwrap(resp, spec.response, spec.many)
}

func (c *Client) prepare(spec callSpec) (*Request, error) {
	if spec.body != nil && (spec.route.Method == http.MethodGet || spec.route.Method == http.MethodDelete) {
		return nil, fmt.Errorf("route %s %s does not accept a body", spec.route.Method, spec.route.Path)
	}

	if spec.slugSchema.Fields != nil {
		if err := spec.slugSchema.ValidateSlugs(spec.slugs); err != nil {
			return nil, err
		}
	}
	path, err := renderPath(spec.route.Path, spec.slugs)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + path
	if spec.query != nil {
		normalized, err := spec.querySchema.Validate(spec.query)
		if err != nil {
			return nil, err
		}
		if q := queryValues(normalized); len(q) > 0 {
			target += "?" + q.Encode()
		}
	}

	var body []byte
	if spec.body != nil {
		normalized, err := spec.bodySchema.Validate(spec.body)
		if err != nil {
			return nil, err
		}
		body, err = json.Marshal(normalized)
		if err != nil {
			return nil, err
		}
	}

	return &Request{Method: spec.route.Method, URL: target, Body: body}, nil
}

// putOpt copies a specified Optional into a request mapping. Unset
// fields are omitted entirely; explicit nulls survive as nil values.
func putOpt[T any](m map[string]any, key string, o types.Optional[T]) {
	if !o.Specified() {
		return
	}
	if o.IsNull() {
		m[key] = nil
		return
	}
	v, _ := o.Value()
	m[key] = v
}

// decodeRecord decodes validated payload bytes into a typed record.
func decodeRecord[T any](raw json.RawMessage) (*T, error) {
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, &types.ValidationError{
			Schema: "response",
			Issues: []types.Issue{{Code: types.CodeInvalidPayload, Reason: err.Error()}},
		}
	}
	return &rec, nil
}

// decodeRecords decodes validated list payload bytes into typed records.
func decodeRecords[T any](raw json.RawMessage) ([]T, error) {
	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, &types.ValidationError{
			Schema: "response",
			Issues: []types.Issue{{Code: types.CodeInvalidPayload, Reason: err.Error()}},
		}
	}
	return recs, nil
}
