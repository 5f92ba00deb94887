package types

// Insight is a normalized snapshot of an insight record.
type Insight struct {
	ID          string  `json:"id"`          // Server-assigned identifier.
	ProjectID   string  `json:"project_id"`  // Owning project.
	Title       string  `json:"title"`       // Insight title.
	Description *string `json:"description"` // nil when not set on the server.
	Value       float64 `json:"value"`       // Current numeric value.
	Emoji       *string `json:"emoji"`       // nil when not set on the server.
}

// InsightValue describes how an insight's numeric value changes on edit.
// Exactly one of Set or Increment must be non-nil.
type InsightValue struct {
	Set       *float64 `json:"set,omitempty"`       // Replace the value.
	Increment *float64 `json:"increment,omitempty"` // Adjust the value by a delta.
}

// SetValue returns an InsightValue that replaces the current value with v.
func SetValue(v float64) InsightValue {
	return InsightValue{Set: &v}
}

// IncrementValue returns an InsightValue that adjusts the current value
// by delta. Negative deltas decrement.
func IncrementValue(delta float64) InsightValue {
	return InsightValue{Increment: &delta}
}

// CreateInsightParams holds the fields for insight creation. Title is
// required; unset optional fields are omitted from the request.
type CreateInsightParams struct {
	Title       string // Insight title (non-empty).
	Description Optional[string]
	Emoji       Optional[string]
	Value       Optional[float64] // Initial value; server defaults to zero.
}

// EditInsightParams holds the patchable insight fields.
// Unset fields keep their remote values; null clears them.
type EditInsightParams struct {
	Title       Optional[string] // New title; cannot be cleared to null.
	Description Optional[string]
	Emoji       Optional[string]
	Value       Optional[InsightValue] // Value change; null resets to zero.
}
