package rest

import (
	"context"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// CreateInsight adds an insight to a project and returns its record.
func (c *Client) CreateInsight(ctx context.Context, namespace string, p types.CreateInsightParams) (*types.Insight, error) {
	body := map[string]any{
		"title": p.Title,
	}
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	putOpt(body, "value", p.Value)
	raw, err := c.call(ctx, callSpec{
		route:      routeCreateInsight,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.InsightSlugs,
		body:       body,
		bodySchema: schema.InsightCreateBody,
		response:   schema.InsightRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Insight](raw)
}

// FetchInsight retrieves a single insight by id.
func (c *Client) FetchInsight(ctx context.Context, namespace, insightID string) (*types.Insight, error) {
	raw, err := c.call(ctx, callSpec{
		route:      routeFetchInsight,
		slugs:      map[string]string{"namespace": namespace, "insight_id": insightID},
		slugSchema: schema.InsightIDSlugs,
		response:   schema.InsightRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Insight](raw)
}

// FetchInsights lists a project's insights. Every element of the
// response must validate or the whole call fails.
func (c *Client) FetchInsights(ctx context.Context, namespace string) ([]types.Insight, error) {
	raw, err := c.call(ctx, callSpec{
		route:      routeFetchInsights,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.InsightSlugs,
		response:   schema.InsightRecord,
		many:       true,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecords[types.Insight](raw)
}

// EditInsight patches an insight. The value field takes a set or
// increment instruction; an explicit null resets the value.
func (c *Client) EditInsight(ctx context.Context, namespace, insightID string, p types.EditInsightParams) (*types.Insight, error) {
	body := map[string]any{}
	putOpt(body, "title", p.Title)
	putOpt(body, "description", p.Description)
	putOpt(body, "emoji", p.Emoji)
	if v, ok := p.Value.Value(); ok {
		update := map[string]any{}
		if v.Set != nil {
			update["set"] = *v.Set
		}
		if v.Increment != nil {
			update["increment"] = *v.Increment
		}
		body["value"] = update
	} else if p.Value.IsNull() {
		body["value"] = nil
	}
	raw, err := c.call(ctx, callSpec{
		route:      routeEditInsight,
		slugs:      map[string]string{"namespace": namespace, "insight_id": insightID},
		slugSchema: schema.InsightIDSlugs,
		body:       body,
		bodySchema: schema.InsightEditBody,
		response:   schema.InsightRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Insight](raw)
}

// DeleteInsight removes an insight from a project.
func (c *Client) DeleteInsight(ctx context.Context, namespace, insightID string) error {
	_, err := c.call(ctx, callSpec{
		route:      routeDeleteInsight,
		slugs:      map[string]string{"namespace": namespace, "insight_id": insightID},
		slugSchema: schema.InsightIDSlugs,
	})
	return err
}
