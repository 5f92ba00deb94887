package types

// Feed is a normalized snapshot of a feed record.
type Feed struct {
	ID          string  `json:"id"`          // Server-assigned identifier.
	ProjectID   string  `json:"project_id"`  // Owning project.
	Name        string  `json:"name"`        // Feed name, used as a URL slug.
	Description *string `json:"description"` // nil when not set on the server.
	Emoji       *string `json:"emoji"`       // nil when not set on the server.
}

// CreateFeedParams holds the fields for feed creation. Name is required;
// unset optional fields are omitted from the request.
type CreateFeedParams struct {
	Name        string // Feed name (non-empty); becomes the feed's URL slug.
	Description Optional[string]
	Emoji       Optional[string]
}

// EditFeedParams holds the patchable feed fields.
// Unset fields keep their remote values; null clears them.
type EditFeedParams struct {
	Name        Optional[string] // New name; cannot be cleared to null.
	Description Optional[string]
	Emoji       Optional[string]
}
