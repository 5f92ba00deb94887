// Package schema declares the body, slug, and response shapes for every
// API operation and validates data against them before it reaches the
// wire or the caller.
package schema

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lawgdev/lawg-go/pkg/types"
)

// Kind enumerates the value kinds a field accepts.
type Kind int

const (
	String Kind = iota // JSON string.
	Number             // Any JSON number; normalized to float64.
	Int                // Integral JSON number; normalized to float64.
	Bool               // JSON boolean.
	Object             // JSON object, validated against Fields.
	List               // JSON array, every element validated against Elem.
)

// Field describes one field of a schema.
type Field struct {
	Kind     Kind
	Required bool             // Absent field is an error.
	Nullable bool             // JSON null is accepted.
	NonEmpty bool             // Strings: the empty string is rejected.
	Min      *float64         // Numbers: inclusive lower bound.
	Max      *float64         // Numbers: inclusive upper bound.
	Fields   map[string]Field // Objects: element fields.
	OneOf    []string         // Objects: exactly one of these keys must be present.
	Elem     *Field           // Lists: element schema.
}

// Schema is a named set of fields describing one payload shape.
// Validation is normalizing and idempotent: integral values become
// float64 once, and validating an already-validated mapping returns an
// equal mapping.
type Schema struct {
	Name   string
	Fields map[string]Field
}

// Validate checks data against the schema and returns a normalized copy.
// The input is never mutated. On failure it returns a
// *types.ValidationError listing every violation.
func (s Schema) Validate(data map[string]any) (map[string]any, error) {
	out, issues := validateFields(s.Fields, "", data)
	if len(issues) > 0 {
		return nil, &types.ValidationError{Schema: s.Name, Issues: issues}
	}
	return out, nil
}

// ValidateAny is Validate for payloads of unknown dynamic type, as
// decoded from a response envelope. Non-object payloads are rejected.
func (s Schema) ValidateAny(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &types.ValidationError{
			Schema: s.Name,
			Issues: []types.Issue{{Code: types.CodeInvalidType, Reason: "expected an object, got " + jsonTypeName(v)}},
		}
	}
	return s.Validate(m)
}

// ValidateMany validates a list payload where every element must satisfy
// the schema. Any failing element fails the whole list; there are no
// partial results.
func (s Schema) ValidateMany(v any) ([]map[string]any, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, &types.ValidationError{
			Schema: s.Name,
			Issues: []types.Issue{{Code: types.CodeInvalidType, Reason: "expected a list, got " + jsonTypeName(v)}},
		}
	}
	out := make([]map[string]any, len(items))
	var issues []types.Issue
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			issues = append(issues, types.Issue{
				Field:  fmt.Sprintf("[%d]", i),
				Code:   types.CodeInvalidType,
				Reason: "expected an object, got " + jsonTypeName(item),
			})
			continue
		}
		norm, iss := validateFields(s.Fields, fmt.Sprintf("[%d]", i), m)
		if len(iss) > 0 {
			issues = append(issues, iss...)
			continue
		}
		out[i] = norm
	}
	if len(issues) > 0 {
		return nil, &types.ValidationError{Schema: s.Name, Issues: issues}
	}
	return out, nil
}

// ValidateSlugs checks a slug map against the schema. Slug values are
// always strings, so the map is adapted and validated like any payload.
func (s Schema) ValidateSlugs(slugs map[string]string) error {
	data := make(map[string]any, len(slugs))
	for k, v := range slugs {
		data[k] = v
	}
	_, err := s.Validate(data)
	return err
}

// validateFields walks declared fields in sorted order so issue lists
// are deterministic, then reports unknown keys the same way.
func validateFields(fields map[string]Field, prefix string, data map[string]any) (map[string]any, []types.Issue) {
	var issues []types.Issue
	out := make(map[string]any, len(data))

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := fields[name]
		path := joinPath(prefix, name)
		v, ok := data[name]
		if !ok {
			if f.Required {
				issues = append(issues, types.Issue{Field: path, Code: types.CodeRequired, Reason: "missing required field"})
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				issues = append(issues, types.Issue{Field: path, Code: types.CodeNotNullable, Reason: "field does not accept null"})
				continue
			}
			out[name] = nil
			continue
		}
		norm, iss := validateValue(f, path, v)
		if len(iss) > 0 {
			issues = append(issues, iss...)
			continue
		}
		out[name] = norm
	}

	var extras []string
	for k := range data {
		if _, ok := fields[k]; !ok {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	for _, k := range extras {
		issues = append(issues, types.Issue{Field: joinPath(prefix, k), Code: types.CodeUnknownKey, Reason: "unknown field"})
	}

	return out, issues
}

func validateValue(f Field, path string, v any) (any, []types.Issue) {
	switch f.Kind {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, invalidType(path, "string", v)
		}
		if f.NonEmpty && s == "" {
			return nil, []types.Issue{{Field: path, Code: types.CodeTooShort, Reason: "must not be empty"}}
		}
		return s, nil

	case Number, Int:
		n, ok := toFloat(v)
		if !ok {
			return nil, invalidType(path, "number", v)
		}
		if f.Kind == Int && n != math.Trunc(n) {
			return nil, invalidType(path, "integer", v)
		}
		if f.Min != nil && n < *f.Min {
			return nil, []types.Issue{{
				Field:  path,
				Code:   types.CodeTooSmall,
				Reason: fmt.Sprintf("must be at least %v", *f.Min),
			}}
		}
		if f.Max != nil && n > *f.Max {
			return nil, []types.Issue{{
				Field:  path,
				Code:   types.CodeTooBig,
				Reason: fmt.Sprintf("must be at most %v", *f.Max),
			}}
		}
		return n, nil

	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, invalidType(path, "boolean", v)
		}
		return b, nil

	case Object:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, invalidType(path, "object", v)
		}
		out, issues := validateFields(f.Fields, path, m)
		if len(issues) > 0 {
			return nil, issues
		}
		if len(f.OneOf) > 0 {
			present := 0
			for _, key := range f.OneOf {
				if _, ok := out[key]; ok {
					present++
				}
			}
			if present != 1 {
				return nil, []types.Issue{{
					Field:  path,
					Code:   types.CodeInvalidPayload,
					Reason: "exactly one of " + strings.Join(f.OneOf, ", ") + " must be provided",
				}}
			}
		}
		return out, nil

	case List:
		items, ok := v.([]any)
		if !ok {
			return nil, invalidType(path, "list", v)
		}
		out := make([]any, len(items))
		var issues []types.Issue
		for i, item := range items {
			p := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				if f.Elem != nil && f.Elem.Nullable {
					out[i] = nil
					continue
				}
				issues = append(issues, types.Issue{Field: p, Code: types.CodeNotNullable, Reason: "element does not accept null"})
				continue
			}
			norm, iss := validateValue(*f.Elem, p, item)
			if len(iss) > 0 {
				issues = append(issues, iss...)
				continue
			}
			out[i] = norm
		}
		if len(issues) > 0 {
			return nil, issues
		}
		return out, nil
	}

	return nil, []types.Issue{{Field: path, Code: types.CodeInvalidType, Reason: "unsupported field kind"}}
}

func invalidType(path, want string, got any) []types.Issue {
	return []types.Issue{{
		Field:  path,
		Code:   types.CodeInvalidType,
		Reason: fmt.Sprintf("expected %s, got %s", want, jsonTypeName(got)),
	}}
}

// toFloat accepts the numeric types produced by JSON decoding and by
// hand-built parameter maps.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
