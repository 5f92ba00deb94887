package lawg

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/lawgdev/lawg-go/internal/rest"
	"github.com/lawgdev/lawg-go/pkg/types"
)

// Version is the SDK release, sent in the User-Agent header.
const Version = "0.1.0"

// Client is the entry point to the lawg API. It holds immutable
// configuration only and is safe for concurrent use; the handles it
// returns are not.
type Client struct {
	core *rest.Client
}

// NewClient returns a Client authenticated with the given API token.
// Returns types.ErrTokenEmpty when the token is empty.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, types.ErrTokenEmpty
	}
	cfg := config{
		baseURL:   rest.DefaultBaseURL,
		userAgent: "lawg-go/" + Version,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.debug && cfg.logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.DebugLevel)
		cfg.logger = l
	}
	transport := cfg.transport
	if transport == nil {
		transport = &rest.HTTPTransport{
			Client:    cfg.httpClient,
			Token:     token,
			UserAgent: cfg.userAgent,
			Limiter:   cfg.limiter,
			Logger:    cfg.logger,
		}
	}
	return &Client{core: rest.NewClient(cfg.baseURL, transport)}, nil
}

// Project returns a manager scoped to a project namespace. No request
// is issued until a manager operation runs.
func (c *Client) Project(namespace string) *ProjectManager {
	return &ProjectManager{client: c, namespace: namespace}
}

// Feed returns a manager scoped to a feed within a project.
func (c *Client) Feed(namespace, feed string) *FeedManager {
	return &FeedManager{client: c, namespace: namespace, feed: feed}
}

// CreateProject registers a new project and returns its handle.
func (c *Client) CreateProject(ctx context.Context, p types.CreateProjectParams) (*Project, error) {
	rec, err := c.core.CreateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Project{client: c, record: *rec}, nil
}

// FetchProject retrieves a project by namespace and returns its handle.
func (c *Client) FetchProject(ctx context.Context, namespace string) (*Project, error) {
	rec, err := c.core.FetchProject(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return &Project{client: c, record: *rec}, nil
}

// EditProject patches a project and returns a handle over the updated
// record.
func (c *Client) EditProject(ctx context.Context, namespace string, p types.EditProjectParams) (*Project, error) {
	rec, err := c.core.EditProject(ctx, namespace, p)
	if err != nil {
		return nil, err
	}
	return &Project{client: c, record: *rec}, nil
}

// DeleteProject removes a project by namespace.
func (c *Client) DeleteProject(ctx context.Context, namespace string) error {
	return c.core.DeleteProject(ctx, namespace)
}

// CreateFeed adds a feed to a project and returns its handle.
func (c *Client) CreateFeed(ctx context.Context, namespace string, p types.CreateFeedParams) (*Feed, error) {
	rec, err := c.core.CreateFeed(ctx, namespace, p)
	if err != nil {
		return nil, err
	}
	return &Feed{client: c, namespace: namespace, record: *rec}, nil
}

// EditFeed patches a feed and returns a handle over the updated record.
func (c *Client) EditFeed(ctx context.Context, namespace, feed string, p types.EditFeedParams) (*Feed, error) {
	rec, err := c.core.EditFeed(ctx, namespace, feed, p)
	if err != nil {
		return nil, err
	}
	return &Feed{client: c, namespace: namespace, record: *rec}, nil
}

// DeleteFeed removes a feed from a project.
func (c *Client) DeleteFeed(ctx context.Context, namespace, feed string) error {
	return c.core.DeleteFeed(ctx, namespace, feed)
}

// CreateLog appends a log to a feed and returns its handle.
func (c *Client) CreateLog(ctx context.Context, namespace, feed string, p types.CreateLogParams) (*Log, error) {
	rec, err := c.core.CreateLog(ctx, namespace, feed, p)
	if err != nil {
		return nil, err
	}
	return &Log{client: c, namespace: namespace, feed: feed, record: *rec}, nil
}

// FetchLog retrieves a single log and returns its handle.
func (c *Client) FetchLog(ctx context.Context, namespace, feed, logID string) (*Log, error) {
	rec, err := c.core.FetchLog(ctx, namespace, feed, logID)
	if err != nil {
		return nil, err
	}
	return &Log{client: c, namespace: namespace, feed: feed, record: *rec}, nil
}

// FetchLogs lists a feed's logs as handles.
func (c *Client) FetchLogs(ctx context.Context, namespace, feed string, f types.LogFilter) ([]*Log, error) {
	recs, err := c.core.FetchLogs(ctx, namespace, feed, f)
	if err != nil {
		return nil, err
	}
	logs := make([]*Log, len(recs))
	for i, rec := range recs {
		logs[i] = &Log{client: c, namespace: namespace, feed: feed, record: rec}
	}
	return logs, nil
}

// EditLog patches a log and returns a handle over the updated record.
func (c *Client) EditLog(ctx context.Context, namespace, feed, logID string, p types.EditLogParams) (*Log, error) {
	rec, err := c.core.EditLog(ctx, namespace, feed, logID, p)
	if err != nil {
		return nil, err
	}
	return &Log{client: c, namespace: namespace, feed: feed, record: *rec}, nil
}

// DeleteLog removes a log from a feed.
func (c *Client) DeleteLog(ctx context.Context, namespace, feed, logID string) error {
	return c.core.DeleteLog(ctx, namespace, feed, logID)
}

// CreateInsight adds an insight to a project and returns its handle.
func (c *Client) CreateInsight(ctx context.Context, namespace string, p types.CreateInsightParams) (*Insight, error) {
	rec, err := c.core.CreateInsight(ctx, namespace, p)
	if err != nil {
		return nil, err
	}
	return &Insight{client: c, namespace: namespace, record: *rec}, nil
}

// FetchInsight retrieves a single insight and returns its handle.
func (c *Client) FetchInsight(ctx context.Context, namespace, insightID string) (*Insight, error) {
	rec, err := c.core.FetchInsight(ctx, namespace, insightID)
	if err != nil {
		return nil, err
	}
	return &Insight{client: c, namespace: namespace, record: *rec}, nil
}

// FetchInsights lists a project's insights as handles.
func (c *Client) FetchInsights(ctx context.Context, namespace string) ([]*Insight, error) {
	recs, err := c.core.FetchInsights(ctx, namespace)
	if err != nil {
		return nil, err
	}
	insights := make([]*Insight, len(recs))
	for i, rec := range recs {
		insights[i] = &Insight{client: c, namespace: namespace, record: rec}
	}
	return insights, nil
}

// EditInsight patches an insight and returns a handle over the updated
// record.
func (c *Client) EditInsight(ctx context.Context, namespace, insightID string, p types.EditInsightParams) (*Insight, error) {
	rec, err := c.core.EditInsight(ctx, namespace, insightID, p)
	if err != nil {
		return nil, err
	}
	return &Insight{client: c, namespace: namespace, record: *rec}, nil
}

// DeleteInsight removes an insight from a project.
func (c *Client) DeleteInsight(ctx context.Context, namespace, insightID string) error {
	return c.core.DeleteInsight(ctx, namespace, insightID)
}
