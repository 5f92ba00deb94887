package lawg

import (
	"context"
	"fmt"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// Log is a live handle over a log record.
type Log struct {
	client    *Client
	namespace string
	feed      string
	record    types.Log
	deleted   bool
}

// Record returns the last record the server sent for this log.
func (l *Log) Record() types.Log { return l.record }

// ID returns the log's identifier.
func (l *Log) ID() string { return l.record.ID }

// Deleted reports whether Delete already ran on this handle.
func (l *Log) Deleted() bool { return l.deleted }

// Edit patches the log and refreshes the handle's record.
func (l *Log) Edit(ctx context.Context, params types.EditLogParams) error {
	if l.deleted {
		return fmt.Errorf("log %q: %w", l.record.ID, types.ErrAlreadyDeleted)
	}
	rec, err := l.client.core.EditLog(ctx, l.namespace, l.feed, l.record.ID, params)
	if err != nil {
		return err
	}
	l.record = *rec
	return nil
}

// Delete removes the log and marks the handle deleted.
func (l *Log) Delete(ctx context.Context) error {
	if l.deleted {
		return fmt.Errorf("log %q: %w", l.record.ID, types.ErrAlreadyDeleted)
	}
	if err := l.client.DeleteLog(ctx, l.namespace, l.feed, l.record.ID); err != nil {
		return err
	}
	l.deleted = true
	return nil
}

// LogManager addresses one log by id without holding a record.
type LogManager struct {
	client    *Client
	namespace string
	feed      string
	id        string
}

// Fetch retrieves the log.
func (m *LogManager) Fetch(ctx context.Context) (*Log, error) {
	return m.client.FetchLog(ctx, m.namespace, m.feed, m.id)
}

// Edit patches the log.
func (m *LogManager) Edit(ctx context.Context, params types.EditLogParams) (*Log, error) {
	return m.client.EditLog(ctx, m.namespace, m.feed, m.id, params)
}

// Delete removes the log.
func (m *LogManager) Delete(ctx context.Context) error {
	return m.client.DeleteLog(ctx, m.namespace, m.feed, m.id)
}
