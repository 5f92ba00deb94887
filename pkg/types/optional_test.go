package types

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestOptionalStates(t *testing.T) {
	tests := []struct {
		name          string
		opt           Optional[string]
		wantSpecified bool
		wantNull      bool
		wantValue     string
		wantOK        bool
	}{
		{
			name:          "zero value is unset",
			opt:           Optional[string]{},
			wantSpecified: false,
			wantNull:      false,
			wantOK:        false,
		},
		{
			name:          "some holds a value",
			opt:           Some("hello"),
			wantSpecified: true,
			wantNull:      false,
			wantValue:     "hello",
			wantOK:        true,
		},
		{
			name:          "some of empty string is still a value",
			opt:           Some(""),
			wantSpecified: true,
			wantNull:      false,
			wantValue:     "",
			wantOK:        true,
		},
		{
			name:          "null is specified but not a value",
			opt:           Null[string](),
			wantSpecified: true,
			wantNull:      true,
			wantOK:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSpecified, tt.opt.Specified())
			assert.Equal(t, tt.wantNull, tt.opt.IsNull())
			v, ok := tt.opt.Value()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestOptionalMarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr error
	}{
		{
			name: "set string",
			in:   Some("feed"),
			want: `"feed"`,
		},
		{
			name: "set number",
			in:   Some(42.5),
			want: `42.5`,
		},
		{
			name: "explicit null",
			in:   Null[string](),
			want: `null`,
		},
		{
			name:    "unset is an encoding error",
			in:      Optional[string]{},
			wantErr: ErrUnsetField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

// Optionals in a struct must still be filtered out by hand before
// encoding; this documents that an unset field poisons the document.
func TestOptionalUnsetPoisonsDocument(t *testing.T) {
	doc := map[string]any{"title": Optional[string]{}}
	_, err := json.Marshal(doc)
	assert.Error(t, err)
}
