package rest

import (
	"context"

	"github.com/lawgdev/lawg-go/internal/schema"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// CreateProject registers a new project and returns its record.
func (c *Client) CreateProject(ctx context.Context, p types.CreateProjectParams) (*types.Project, error) {
	body := map[string]any{
		"name":      p.Name,
		"namespace": p.Namespace,
	}
	raw, err := c.call(ctx, callSpec{
		route:      routeCreateProject,
		body:       body,
		bodySchema: schema.ProjectCreateBody,
		response:   schema.ProjectRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Project](raw)
}

// FetchProject retrieves the project behind a namespace.
func (c *Client) FetchProject(ctx context.Context, namespace string) (*types.Project, error) {
	raw, err := c.call(ctx, callSpec{
		route:      routeFetchProject,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.ProjectSlugs,
		response:   schema.ProjectRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Project](raw)
}

// EditProject patches a project. Unset fields keep their remote values.
func (c *Client) EditProject(ctx context.Context, namespace string, p types.EditProjectParams) (*types.Project, error) {
	body := map[string]any{}
	putOpt(body, "name", p.Name)
	raw, err := c.call(ctx, callSpec{
		route:      routeEditProject,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.ProjectSlugs,
		body:       body,
		bodySchema: schema.ProjectEditBody,
		response:   schema.ProjectRecord,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[types.Project](raw)
}

// DeleteProject removes a project. Deletion is idempotent from the
// core's perspective: repeating the call simply repeats the request.
func (c *Client) DeleteProject(ctx context.Context, namespace string) error {
	_, err := c.call(ctx, callSpec{
		route:      routeDeleteProject,
		slugs:      map[string]string{"namespace": namespace},
		slugSchema: schema.ProjectSlugs,
	})
	return err
}
