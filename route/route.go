// Package route maps view selections to shareable paths and keeps an
// in-process history in step with the view state.
package route

import "strings"

// Route is a parsed path. Detail is empty when the path names a tab only.
type Route struct {
	TabKey string `json:"tabKey"`
	Detail string `json:"detailSegment,omitempty"`
}

// NormalizePath trims surrounding whitespace and trailing slashes and makes
// sure the result starts with a slash. An empty input gives "/".
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Parse resolves path against the known tab keys. An unknown or missing
// first segment resolves to fallback and drops the detail segment.
func Parse(path string, tabs []string, fallback string) Route {
	segments := splitSegments(NormalizePath(path))
	if len(segments) == 0 || !contains(tabs, segments[0]) {
		return Route{TabKey: fallback}
	}
	r := Route{TabKey: segments[0]}
	if len(segments) > 1 {
		r.Detail = segments[1]
	}
	return r
}

// Build is the inverse of Parse. A blank tab key becomes fallback and an
// empty detail is omitted. The detail is written as given.
func Build(tabKey, fallback, detail string) string {
	tabKey = strings.TrimSpace(tabKey)
	if tabKey == "" {
		tabKey = fallback
	}
	if detail == "" {
		return "/" + tabKey
	}
	return "/" + tabKey + "/" + detail
}

func (r Route) Path(fallback string) string {
	return Build(r.TabKey, fallback, r.Detail)
}

func splitSegments(path string) []string {
	var out []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
