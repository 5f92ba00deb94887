package lawg

import (
	"context"
	"fmt"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// Feed is a live handle over a feed record. The handle tracks the feed
// by name, so an Edit that renames the feed keeps the handle usable.
type Feed struct {
	client    *Client
	namespace string
	record    types.Feed
	deleted   bool
}

// Record returns the last record the server sent for this feed.
func (f *Feed) Record() types.Feed { return f.record }

// Name returns the feed's URL slug.
func (f *Feed) Name() string { return f.record.Name }

// Deleted reports whether Delete already ran on this handle.
func (f *Feed) Deleted() bool { return f.deleted }

// Edit patches the feed and refreshes the handle's record.
func (f *Feed) Edit(ctx context.Context, params types.EditFeedParams) error {
	if f.deleted {
		return fmt.Errorf("feed %q: %w", f.record.Name, types.ErrAlreadyDeleted)
	}
	rec, err := f.client.core.EditFeed(ctx, f.namespace, f.record.Name, params)
	if err != nil {
		return err
	}
	f.record = *rec
	return nil
}

// Delete removes the feed and marks the handle deleted.
func (f *Feed) Delete(ctx context.Context) error {
	if f.deleted {
		return fmt.Errorf("feed %q: %w", f.record.Name, types.ErrAlreadyDeleted)
	}
	if err := f.client.DeleteFeed(ctx, f.namespace, f.record.Name); err != nil {
		return err
	}
	f.deleted = true
	return nil
}

// CreateLog appends a log to this feed.
func (f *Feed) CreateLog(ctx context.Context, params types.CreateLogParams) (*Log, error) {
	return f.client.CreateLog(ctx, f.namespace, f.record.Name, params)
}

// Logs lists this feed's logs.
func (f *Feed) Logs(ctx context.Context, filter types.LogFilter) ([]*Log, error) {
	return f.client.FetchLogs(ctx, f.namespace, f.record.Name, filter)
}

// Log returns a manager for one of this feed's logs.
func (f *Feed) Log(id string) *LogManager {
	return &LogManager{client: f.client, namespace: f.namespace, feed: f.record.Name, id: id}
}

// FeedManager addresses one feed by name without holding a record.
type FeedManager struct {
	client    *Client
	namespace string
	feed      string
}

// Create registers the feed under the manager's name. The name set on
// the manager wins over params.Name.
func (m *FeedManager) Create(ctx context.Context, params types.CreateFeedParams) (*Feed, error) {
	params.Name = m.feed
	return m.client.CreateFeed(ctx, m.namespace, params)
}

// Edit patches the feed.
func (m *FeedManager) Edit(ctx context.Context, params types.EditFeedParams) (*Feed, error) {
	return m.client.EditFeed(ctx, m.namespace, m.feed, params)
}

// Delete removes the feed.
func (m *FeedManager) Delete(ctx context.Context) error {
	return m.client.DeleteFeed(ctx, m.namespace, m.feed)
}

// CreateLog appends a log to the feed.
func (m *FeedManager) CreateLog(ctx context.Context, params types.CreateLogParams) (*Log, error) {
	return m.client.CreateLog(ctx, m.namespace, m.feed, params)
}

// Logs lists the feed's logs.
func (m *FeedManager) Logs(ctx context.Context, filter types.LogFilter) ([]*Log, error) {
	return m.client.FetchLogs(ctx, m.namespace, m.feed, filter)
}

// Log returns a manager for one log in this feed.
func (m *FeedManager) Log(id string) *LogManager {
	return &LogManager{client: m.client, namespace: m.namespace, feed: m.feed, id: id}
}
