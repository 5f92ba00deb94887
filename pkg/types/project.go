package types

// Project is a normalized snapshot of a project record.
type Project struct {
	ID        string   `json:"id"`        // Server-assigned identifier.
	Namespace string   `json:"namespace"` // Unique handle, used as a URL slug.
	Name      string   `json:"name"`      // Display name.
	Flags     int      `json:"flags"`     // Server-defined capability bits.
	Icon      *string  `json:"icon"`      // Icon URL; nil when not set on the server.
	Feeds     []Feed   `json:"feeds"`     // Feeds owned by the project.
	Members   []Member `json:"members"`   // Accounts with access to the project.
}

// Member is an entry in a project's member list.
type Member struct {
	ID       string  `json:"id"`       // Server-assigned identifier.
	Username string  `json:"username"` // Account handle.
	Icon     *string `json:"icon"`     // Avatar URL; nil when not set.
}

// CreateProjectParams holds the fields for project creation.
// Both fields are required and must be non-empty.
type CreateProjectParams struct {
	Name      string // Display name.
	Namespace string // Unique handle; becomes the project's URL slug.
}

// EditProjectParams holds the patchable project fields.
// Unset fields keep their remote values.
type EditProjectParams struct {
	Name Optional[string] // New display name; cannot be cleared to null.
}
