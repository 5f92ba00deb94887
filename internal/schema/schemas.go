package schema

// Slugs returns a schema whose fields are all required, non-empty
// strings. Every URL path parameter is validated this way.
func Slugs(name string, keys ...string) Schema {
	fields := make(map[string]Field, len(keys))
	for _, k := range keys {
		fields[k] = Field{Kind: String, Required: true, NonEmpty: true}
	}
	return Schema{Name: name, Fields: fields}
}

// Slug schemas, one per path shape.
var (
	ProjectSlugs   = Slugs("project.slug", "namespace")
	FeedSlugs      = Slugs("feed.slug", "namespace", "feed")
	LogSlugs       = Slugs("log.slug", "namespace", "feed")
	LogIDSlugs     = Slugs("log.id.slug", "namespace", "feed", "log_id")
	InsightSlugs   = Slugs("insight.slug", "namespace")
	InsightIDSlugs = Slugs("insight.id.slug", "namespace", "insight_id")
)

// Request body schemas. Create bodies require the resource's mandatory
// fields; edit bodies accept any subset, so none are required.
var (
	ProjectCreateBody = Schema{
		Name: "project.create.body",
		Fields: map[string]Field{
			"name":      {Kind: String, Required: true, NonEmpty: true},
			"namespace": {Kind: String, Required: true, NonEmpty: true},
		},
	}

	ProjectEditBody = Schema{
		Name: "project.edit.body",
		Fields: map[string]Field{
			"name": {Kind: String, NonEmpty: true},
		},
	}

	FeedCreateBody = Schema{
		Name: "feed.create.body",
		Fields: map[string]Field{
			"name":        {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
		},
	}

	FeedEditBody = Schema{
		Name: "feed.edit.body",
		Fields: map[string]Field{
			"name":        {Kind: String, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
		},
	}

	LogCreateBody = Schema{
		Name: "log.create.body",
		Fields: map[string]Field{
			"title":       {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
			"color":       {Kind: String, Nullable: true},
		},
	}

	LogEditBody = Schema{
		Name: "log.edit.body",
		Fields: map[string]Field{
			"title":       {Kind: String, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
			"color":       {Kind: String, Nullable: true},
		},
	}

	// LogListQuery travels as URL query parameters, never as a GET body.
	LogListQuery = Schema{
		Name: "log.list.query",
		Fields: map[string]Field{
			"limit":  {Kind: Int, Min: fptr(0)},
			"offset": {Kind: Int, Min: fptr(0)},
		},
	}

	InsightCreateBody = Schema{
		Name: "insight.create.body",
		Fields: map[string]Field{
			"title":       {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
			"value":       {Kind: Number},
		},
	}

	InsightEditBody = Schema{
		Name: "insight.edit.body",
		Fields: map[string]Field{
			"title":       {Kind: String, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
			"value": {
				Kind:     Object,
				Nullable: true,
				OneOf:    []string{"set", "increment"},
				Fields: map[string]Field{
					"set":       {Kind: Number},
					"increment": {Kind: Number},
				},
			},
		},
	}
)

// Response record schemas. Envelope payloads are validated against these
// before being decoded into pkg/types records.
var (
	MemberRecord = Schema{
		Name: "member.response",
		Fields: map[string]Field{
			"id":       {Kind: String, Required: true},
			"username": {Kind: String, Required: true},
			"icon":     {Kind: String, Nullable: true},
		},
	}

	FeedRecord = Schema{
		Name: "feed.response",
		Fields: map[string]Field{
			"id":          {Kind: String, Required: true},
			"project_id":  {Kind: String, Required: true},
			"name":        {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
		},
	}

	ProjectRecord = Schema{
		Name: "project.response",
		Fields: map[string]Field{
			"id":        {Kind: String, Required: true},
			"namespace": {Kind: String, Required: true, NonEmpty: true},
			"name":      {Kind: String, Required: true, NonEmpty: true},
			"flags":     {Kind: Int, Required: true},
			"icon":      {Kind: String, Nullable: true},
			"feeds":     {Kind: List, Elem: &Field{Kind: Object, Fields: FeedRecord.Fields}},
			"members":   {Kind: List, Elem: &Field{Kind: Object, Fields: MemberRecord.Fields}},
		},
	}

	LogRecord = Schema{
		Name: "log.response",
		Fields: map[string]Field{
			"id":          {Kind: String, Required: true},
			"project_id":  {Kind: String, Required: true},
			"feed_id":     {Kind: String, Required: true},
			"title":       {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"emoji":       {Kind: String, Nullable: true},
			"color":       {Kind: String, Nullable: true},
		},
	}

	InsightRecord = Schema{
		Name: "insight.response",
		Fields: map[string]Field{
			"id":          {Kind: String, Required: true},
			"project_id":  {Kind: String, Required: true},
			"title":       {Kind: String, Required: true, NonEmpty: true},
			"description": {Kind: String, Nullable: true},
			"value":       {Kind: Number, Required: true},
			"emoji":       {Kind: String, Nullable: true},
		},
	}
)

func fptr(v float64) *float64 {
	return &v
}
