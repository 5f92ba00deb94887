package rest

import (
	"context"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// CreateFeed adds a feed to a project and returns its record.
func (c *Client) CreateFeed(ctx context.Context, namespace string, p types.CreateFeedParams) (*types.Feed, error) {
	body := map[string]any{
		"name": p.Name,
	}
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	raw, err := c.call(ctx, callSpec{
		route:      routeCreateFeed,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.ProjectSlugs,
		body:       body,
		bodySchema: schema.FeedCreateBody,
		response:   schema.FeedRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Feed](raw)
}

// EditFeed patches a feed. Unset fields keep their remote values;
// explicit nulls clear them. An all-unset edit still issues the request
// with an empty body.
func (c *Client) EditFeed(ctx context.Context, namespace, feed string, p types.EditFeedParams) (*types.Feed, error) {
	body := map[string]any{}
	putOpt(body, "name", p.Name)
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	raw, err := c.call(ctx, callSpec{
		route:      routeEditFeed,
		slugs:      map[string]string{"namespace": namespace, "feed": feed},
		slugSchema: schema.FeedSlugs,
		body:       body,
		bodySchema: schema.FeedEditBody,
		response:   schema.FeedRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Feed](raw)
}

// DeleteFeed removes a feed from a project.
func (c *Client) DeleteFeed(ctx context.Context, namespace, feed string) error {
	_, err := c.call(ctx, callSpec{
		route:      routeDeleteFeed,
		slugs:      map[string]string{"namespace": namespace, "feed": feed},
		slugSchema: schema.FeedSlugs,
	})
	return err
}
