package rest

import (
	"context"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// CreateLog appends a log to a feed and returns its record.
func (c *Client) CreateLog(ctx context.Context, namespace, feed string, p types.CreateLogParams) (*types.Log, error) {
	body := map[string]any{
		"title": p.Title,
	}
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	putOpt(body, "color", p.Color)
	raw, err := c.call(ctx, callSpec{
		route:      routeCreateLog,
		slugs:      map[string]string{"namespace": namespace, "feed": feed},
		slugSchema: schema.LogSlugs,
		body:       body,
		bodySchema: schema.LogCreateBody,
		response:   schema.LogRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Log](raw)
}

// FetchLog retrieves a single log by id.
func (c *Client) FetchLog(ctx context.Context, namespace, feed, logID string) (*types.Log, error) {
	raw, err := c.call(ctx, callSpec{
		route:      routeFetchLog,
		slugs:      map[string]string{"namespace": namespace, "feed": feed, "log_id": logID},
		slugSchema: schema.LogIDSlugs,
		response:   schema.LogRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Log](raw)
}

// FetchLogs lists a feed's logs, newest first. Filter bounds travel as
// URL query parameters; unset bounds defer to server defaults. Every
// element of the response must validate or the whole call fails.
func (c *Client) FetchLogs(ctx context.Context, namespace, feed string, f types.LogFilter) ([]types.Log, error) {
	query := map[string]any{}
	putOpt(query, "limit", f.Limit)
	putOpt(query, "offset", f.Offset)
	raw, err := c.call(ctx, callSpec{
		route:       routeFetchLogs,
		slugs:       map[string]string{"namespace": namespace, "feed": feed},
		slugSchema:  schema.LogSlugs,
		query:       query,
		querySchema: schema.LogListQuery,
		response:    schema.LogRecord,
		many:        true,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecords[types.Log](raw)
}

// EditLog patches a log. Unset fields keep their remote values; explicit
// nulls clear them.
func (c *Client) EditLog(ctx context.Context, namespace, feed, logID string, p types.EditLogParams) (*types.Log, error) {
	body := map[string]any{}
	putOpt(body, "title", p.Title)
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	putOpt(body, "color", p.Color)
	raw, err := c.call(ctx, callSpec{
		route:      routeEditLog,
		slugs:      map[string]string{"namespace": namespace, "feed": feed, "log_id": logID},
		slugSchema: schema.LogIDSlugs,
		body:       body,
		bodySchema: schema.LogEditBody,
		response:   schema.LogRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Log](raw)
}

// DeleteLog removes a log from a feed.
func (c *Client) DeleteLog(ctx context.Context, namespace, feed, logID string) error {
	_, err := c.call(ctx, callSpec{
		route:      routeDeleteLog,
		slugs:      map[string]string{"namespace": namespace, "feed": feed, "log_id": logID},
		slugSchema: schema.LogIDSlugs,
	})
	return err
}
