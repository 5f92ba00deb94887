package lawg

import (
	"context"
	"fmt"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// Insight is a live handle over an insight record.
type Insight struct {
	client    *Client
	namespace string
	record    types.Insight
	deleted   bool
}

// Record returns the last record the server sent for this insight.
func (i *Insight) Record() types.Insight { return i.record }

// ID returns the insight's identifier.
func (i *Insight) ID() string { return i.record.ID }

// Value returns the insight's current metric value.
func (i *Insight) Value() float64 { return i.record.Value }

// Deleted reports whether Delete already ran on this handle.
func (i *Insight) Deleted() bool { return i.deleted }

// Edit patches the insight and refreshes the handle's record.
func (i *Insight) Edit(ctx context.Context, params types.EditInsightParams) error {
	if i.deleted {
		return fmt.Errorf("insight %q: %w", i.record.ID, types.ErrAlreadyDeleted)
	}
	rec, err := i.client.core.EditInsight(ctx, i.namespace, i.record.ID, params)
	if err != nil {
		return err
	}
	i.record = *rec
	return nil
}

// SetValue overwrites the insight's metric value.
func (i *Insight) SetValue(ctx context.Context, v float64) error {
	return i.Edit(ctx, types.EditInsightParams{
		Value: types.Some(types.SetValue(v)),
	})
}

// Increment adjusts the insight's metric value by delta, which may be
// negative.
func (i *Insight) Increment(ctx context.Context, delta float64) error {
	return i.Edit(ctx, types.EditInsightParams{
		Value: types.Some(types.IncrementValue(delta)),
	})
}

// Delete removes the insight and marks the handle deleted.
func (i *Insight) Delete(ctx context.Context) error {
	if i.deleted {
		return fmt.Errorf("insight %q: %w", i.record.ID, types.ErrAlreadyDeleted)
	}
	if err := i.client.DeleteInsight(ctx, i.namespace, i.record.ID); err != nil {
		return err
	}
	i.deleted = true
	return nil
}

// InsightManager addresses a project's insight collection.
type InsightManager struct {
	client    *Client
	namespace string
}

// Create adds an insight to the project.
func (m *InsightManager) Create(ctx context.Context, params types.CreateInsightParams) (*Insight, error) {
	return m.client.CreateInsight(ctx, m.namespace, params)
}

// Fetch retrieves one insight by id.
func (m *InsightManager) Fetch(ctx context.Context, id string) (*Insight, error) {
	return m.client.FetchInsight(ctx, m.namespace, id)
}

// List retrieves all of the project's insights.
func (m *InsightManager) List(ctx context.Context) ([]*Insight, error) {
	return m.client.FetchInsights(ctx, m.namespace)
}

// Edit patches one insight by id.
func (m *InsightManager) Edit(ctx context.Context, id string, params types.EditInsightParams) (*Insight, error) {
	return m.client.EditInsight(ctx, m.namespace, id, params)
}

// Delete removes one insight by id.
func (m *InsightManager) Delete(ctx context.Context, id string) error {
	return m.client.DeleteInsight(ctx, m.namespace, id)
}
