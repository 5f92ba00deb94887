package lawg

import (
	"context"
	"fmt"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// Project is a live handle over a project record. Edits refresh the
// record in place; after Delete the handle refuses further mutation.
type Project struct {
	client  *Client
	record  types.Project
	deleted bool
}

// Record returns the last record the server sent for this project.
func (p *Project) Record() types.Project { return p.record }

// Namespace returns the project's URL slug.
func (p *Project) Namespace() string { return p.record.Namespace }

// Deleted reports whether Delete already ran on this handle.
func (p *Project) Deleted() bool { return p.deleted }

// Edit patches the project and refreshes the handle's record.
func (p *Project) Edit(ctx context.Context, params types.EditProjectParams) error {
	if p.deleted {
		return fmt.Errorf("project %q: %w", p.record.Namespace, types.ErrAlreadyDeleted)
	}
	rec, err := p.client.core.EditProject(ctx, p.record.Namespace, params)
	if err != nil {
		return err
	}
	p.record = *rec
	return nil
}

// Delete removes the project and marks the handle deleted.
func (p *Project) Delete(ctx context.Context) error {
	if p.deleted {
		return fmt.Errorf("project %q: %w", p.record.Namespace, types.ErrAlreadyDeleted)
	}
	if err := p.client.DeleteProject(ctx, p.record.Namespace); err != nil {
		return err
	}
	p.deleted = true
	return nil
}

// CreateFeed adds a feed to this project.
func (p *Project) CreateFeed(ctx context.Context, params types.CreateFeedParams) (*Feed, error) {
	return p.client.CreateFeed(ctx, p.record.Namespace, params)
}

// Feed returns a manager for one of this project's feeds.
func (p *Project) Feed(name string) *FeedManager {
	return p.client.Feed(p.record.Namespace, name)
}

// CreateInsight adds an insight to this project.
func (p *Project) CreateInsight(ctx context.Context, params types.CreateInsightParams) (*Insight, error) {
	return p.client.CreateInsight(ctx, p.record.Namespace, params)
}

// Insights returns the manager for this project's insight collection.
func (p *Project) Insights() *InsightManager {
	return &InsightManager{client: p.client, namespace: p.record.Namespace}
}

// ProjectManager addresses one project by namespace without holding a
// record. It is the entry point when the caller knows the slug but has
// not fetched the project.
type ProjectManager struct {
	client    *Client
	namespace string
}

// Create registers the project under the manager's namespace.
func (m *ProjectManager) Create(ctx context.Context, name string) (*Project, error) {
	return m.client.CreateProject(ctx, types.CreateProjectParams{
		Name:      name,
		Namespace: m.namespace,
	})
}

// Fetch retrieves the project.
func (m *ProjectManager) Fetch(ctx context.Context) (*Project, error) {
	return m.client.FetchProject(ctx, m.namespace)
}

// Edit patches the project.
func (m *ProjectManager) Edit(ctx context.Context, params types.EditProjectParams) (*Project, error) {
	return m.client.EditProject(ctx, m.namespace, params)
}

// Delete removes the project.
func (m *ProjectManager) Delete(ctx context.Context) error {
	return m.client.DeleteProject(ctx, m.namespace)
}

// Feed returns a manager for a feed in this project.
func (m *ProjectManager) Feed(name string) *FeedManager {
	return m.client.Feed(m.namespace, name)
}

// Insights returns the manager for this project's insight collection.
func (m *ProjectManager) Insights() *InsightManager {
	return &InsightManager{client: m.client, namespace: m.namespace}
}
