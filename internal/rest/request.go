package rest

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Request is a transport-neutral descriptor of one API call.
type Request struct {
	Method string
	URL    string // Fully rendered, query string included.
	Body   []byte // JSON document; nil for GET and DELETE.
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// renderPath substitutes every {placeholder} in the template with the
// percent-escaped slug value. A placeholder without a slug, a slug
// without a placeholder, or a leftover brace is a routing bug and fails
// before any network activity.
func renderPath(path string, slugs map[string]string) (string, error) {
	used := make(map[string]bool, len(slugs))
	var missing []string

	rendered := placeholderPattern.ReplaceAllStringFunc(path, func(tok string) string {
		name := tok[1 : len(tok)-1]
		v, ok := slugs[name]
		if !ok {
			missing = append(missing, name)
			return tok
		}
		used[name] = true
		return url.PathEscape(v)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("route %s: no slug for %s", path, strings.Join(missing, ", "))
	}
	if strings.ContainsAny(rendered, "{}") {
		return "", fmt.Errorf("route %s: unresolved placeholder", path)
	}
	for name := range slugs {
		if !used[name] {
			return "", fmt.Errorf("route %s: unused slug %q", path, name)
		}
	}
	return rendered, nil
}

// queryValues renders a validated query mapping as URL parameters.
// Validation has already normalized numbers to float64; integral values
// print without a fractional part.
func queryValues(m map[string]any) url.Values {
	q := url.Values{}
	for k, v := range m {
		switch n := v.(type) {
		case string:
			q.Set(k, n)
		case float64:
			q.Set(k, strconv.FormatFloat(n, 'f', -1, 64))
		case bool:
			q.Set(k, strconv.FormatBool(n))
		}
	}
	return q
}
