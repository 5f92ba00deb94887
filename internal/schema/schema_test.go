package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// issueCodes extracts the codes of a ValidationError for compact matching.
func issueCodes(t *testing.T, err error) []string {
	t.Helper()
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	codes := make([]string, len(verr.Issues))
	for i, iss := range verr.Issues {
		codes[i] = iss.Code
	}
	return codes
}

func TestValidateRequiredAndUnknown(t *testing.T) {
	s := Schema{
		Name: "test.body",
		Fields: map[string]Field{
			"name": {Kind: String, Required: true},
		},
	}

	_, err := s.Validate(map[string]any{"extra": 1})
	require.Error(t, err)
	assert.Equal(t, []string{types.CodeRequired, types.CodeUnknownKey}, issueCodes(t, err))

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "test.body", verr.Schema)
	assert.Equal(t, "name", verr.Issues[0].Field)
	assert.Equal(t, "extra", verr.Issues[1].Field)
}

func TestValidateNullability(t *testing.T) {
	s := Schema{
		Name: "test.body",
		Fields: map[string]Field{
			"description": {Kind: String, Nullable: true},
			"title":       {Kind: String},
		},
	}

	out, err := s.Validate(map[string]any{"description": nil})
	require.NoError(t, err)
	v, ok := out["description"]
	assert.True(t, ok, "explicit null must survive validation")
	assert.Nil(t, v)

	_, err = s.Validate(map[string]any{"title": nil})
	assert.Equal(t, []string{types.CodeNotNullable}, issueCodes(t, err))
}

func TestValidateTypeChecks(t *testing.T) {
	s := Schema{
		Name: "test.body",
		Fields: map[string]Field{
			"title": {Kind: String},
			"count": {Kind: Int},
			"flag":  {Kind: Bool},
			"meta":  {Kind: Object, Fields: map[string]Field{}},
			"items": {Kind: List, Elem: &Field{Kind: String}},
		},
	}

	tests := []struct {
		name string
		data map[string]any
	}{
		{"number for string", map[string]any{"title": 3}},
		{"string for int", map[string]any{"count": "3"}},
		{"fractional for int", map[string]any{"count": 1.5}},
		{"string for bool", map[string]any{"flag": "true"}},
		{"list for object", map[string]any{"meta": []any{}}},
		{"object for list", map[string]any{"items": map[string]any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Validate(tt.data)
			assert.Equal(t, []string{types.CodeInvalidType}, issueCodes(t, err))
		})
	}
}

func TestValidateStringNonEmpty(t *testing.T) {
	s := Schema{
		Name:   "test.body",
		Fields: map[string]Field{"name": {Kind: String, Required: true, NonEmpty: true}},
	}
	_, err := s.Validate(map[string]any{"name": ""})
	assert.Equal(t, []string{types.CodeTooShort}, issueCodes(t, err))
}

func TestValidateNumericBounds(t *testing.T) {
	s := Schema{
		Name: "test.query",
		Fields: map[string]Field{
			"limit": {Kind: Int, Min: fptr(0), Max: fptr(100)},
		},
	}

	_, err := s.Validate(map[string]any{"limit": -1})
	assert.Equal(t, []string{types.CodeTooSmall}, issueCodes(t, err))

	_, err = s.Validate(map[string]any{"limit": 101})
	assert.Equal(t, []string{types.CodeTooBig}, issueCodes(t, err))

	out, err := s.Validate(map[string]any{"limit": 25})
	require.NoError(t, err)
	assert.Equal(t, float64(25), out["limit"])
}

// Validation must be idempotent: running a validated mapping through the
// same schema again yields an equal mapping.
func TestValidateIdempotent(t *testing.T) {
	s := Schema{
		Name: "test.body",
		Fields: map[string]Field{
			"title": {Kind: String, Required: true},
			"limit": {Kind: Int},
			"meta":  {Kind: Object, Nullable: true, Fields: map[string]Field{"set": {Kind: Number}}},
			"tags":  {Kind: List, Elem: &Field{Kind: Int}},
		},
	}
	in := map[string]any{
		"title": "deploy",
		"limit": 10,
		"meta":  map[string]any{"set": 2},
		"tags":  []any{1, 2, 3},
	}

	once, err := s.Validate(in)
	require.NoError(t, err)
	twice, err := s.Validate(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	// Input is untouched; its ints stay ints.
	assert.Equal(t, 10, in["limit"])
	assert.Equal(t, float64(10), once["limit"])
}

func TestValidateManyRequiresList(t *testing.T) {
	_, err := LogRecord.ValidateMany(map[string]any{"id": "1"})
	assert.Equal(t, []string{types.CodeInvalidType}, issueCodes(t, err))

	_, err = LogRecord.ValidateMany("nope")
	require.Error(t, err)
}

func TestValidateManyAllOrNothing(t *testing.T) {
	good := map[string]any{
		"id": "1", "project_id": "p", "feed_id": "f",
		"title": "ok", "description": nil, "emoji": nil, "color": nil,
	}
	bad := map[string]any{
		"id": "2", "project_id": "p", "feed_id": "f",
		"title": 7,
	}

	out, err := LogRecord.ValidateMany([]any{good, good})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "ok", out[0]["title"])

	_, err = LogRecord.ValidateMany([]any{good, bad})
	require.Error(t, err)
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "[1].title", verr.Issues[0].Field)
}

func TestValidateAnyRequiresObject(t *testing.T) {
	_, err := FeedRecord.ValidateAny([]any{})
	assert.Equal(t, []string{types.CodeInvalidType}, issueCodes(t, err))

	_, err = FeedRecord.ValidateAny(map[string]any{
		"id": "1", "project_id": "p", "name": "news",
	})
	assert.NoError(t, err)
}

func TestInsightValueExactlyOne(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantCode string
	}{
		{"set only", map[string]any{"set": 1.0}, ""},
		{"increment only", map[string]any{"increment": -2.0}, ""},
		{"neither", map[string]any{}, types.CodeInvalidPayload},
		{"both", map[string]any{"set": 1.0, "increment": 2.0}, types.CodeInvalidPayload},
		{"null clears", nil, ""},
		{"wrong type inside", map[string]any{"set": "1"}, types.CodeInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InsightEditBody.Validate(map[string]any{"value": tt.value})
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{tt.wantCode}, issueCodes(t, err))
		})
	}
}

func TestValidateSlugs(t *testing.T) {
	err := LogIDSlugs.ValidateSlugs(map[string]string{
		"namespace": "test", "feed": "news", "log_id": "42",
	})
	assert.NoError(t, err)

	err = LogIDSlugs.ValidateSlugs(map[string]string{"namespace": "test", "feed": "news"})
	assert.Equal(t, []string{types.CodeRequired}, issueCodes(t, err))

	err = ProjectSlugs.ValidateSlugs(map[string]string{"namespace": ""})
	assert.Equal(t, []string{types.CodeTooShort}, issueCodes(t, err))
}

func TestDeclaredCreateBodies(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		valid   map[string]any
		missing map[string]any
	}{
		{
			name:    "project",
			schema:  ProjectCreateBody,
			valid:   map[string]any{"name": "test", "namespace": "test"},
			missing: map[string]any{"namespace": "test"},
		},
		{
			name:    "feed",
			schema:  FeedCreateBody,
			valid:   map[string]any{"name": "news", "description": nil},
			missing: map[string]any{"description": "d"},
		},
		{
			name:    "log",
			schema:  LogCreateBody,
			valid:   map[string]any{"title": "deploy", "emoji": "🚀"},
			missing: map[string]any{"description": "d"},
		},
		{
			name:    "insight",
			schema:  InsightCreateBody,
			valid:   map[string]any{"title": "users", "value": 10},
			missing: map[string]any{"value": 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.schema.Validate(tt.valid)
			assert.NoError(t, err)

			_, err = tt.schema.Validate(tt.missing)
			assert.Equal(t, []string{types.CodeRequired}, issueCodes(t, err))
		})
	}
}

func TestProjectRecordNestedLists(t *testing.T) {
	data := map[string]any{
		"id": "p1", "namespace": "test", "name": "Test", "flags": 0, "icon": nil,
		"feeds": []any{
			map[string]any{"id": "f1", "project_id": "p1", "name": "news", "description": nil, "emoji": nil},
		},
		"members": []any{
			map[string]any{"id": "m1", "username": "ana", "icon": nil},
		},
	}
	out, err := ProjectRecord.Validate(data)
	require.NoError(t, err)
	feeds, ok := out["feeds"].([]any)
	require.True(t, ok)
	require.Len(t, feeds, 1)

	data["feeds"] = []any{map[string]any{"id": "f1", "project_id": "p1", "name": ""}}
	_, err = ProjectRecord.Validate(data)
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "feeds[0].name", verr.Issues[0].Field)
	assert.Equal(t, types.CodeTooShort, verr.Issues[0].Code)
}
