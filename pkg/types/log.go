package types

// Log is a normalized snapshot of a log record.
type Log struct {
	ID          string  `json:"id"`          // Server-assigned identifier.
	ProjectID   string  `json:"project_id"`  // Owning project.
	FeedID      string  `json:"feed_id"`     // Owning feed.
	Title       string  `json:"title"`       // Log title.
	Description *string `json:"description"` // nil when not set on the server.
	Emoji       *string `json:"emoji"`       // nil when not set on the server.
	Color       *string `json:"color"`       // nil when not set on the server.
}

// CreateLogParams holds the fields for log creation. Title is required;
// unset optional fields are omitted from the request.
type CreateLogParams struct {
	Title       string // Log title (non-empty).
	Description Optional[string]
	Emoji       Optional[string]
	Color       Optional[string]
}

// EditLogParams holds the patchable log fields.
// Unset fields keep their remote values; null clears them.
type EditLogParams struct {
	Title       Optional[string] // New title; cannot be cleared to null.
	Description Optional[string]
	Emoji       Optional[string]
	Color       Optional[string]
}

// LogFilter bounds a log listing. Unset fields defer to server defaults.
// Limit and Offset must be non-negative when set.
type LogFilter struct {
	Limit  Optional[int] // Maximum number of logs to return.
	Offset Optional[int] // Number of logs to skip.
}
