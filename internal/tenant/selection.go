package tenant

import (
	"net/url"
	"strings"
)

// Selection is the tenant currently shown together with the query string
// it is mirrored into. It backs the manual tenant switch.
type Selection struct {
	known   Directory
	current string
	query   url.Values
}

// NewSelection starts a selection at current. The query is copied.
func NewSelection(known Directory, current string, query url.Values) *Selection {
	q := make(url.Values, len(query))
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	return &Selection{
		known:   known,
		current: current,
		query:   q,
	}
}

// Current returns the selected tenant.
func (s *Selection) Current() string {
	return s.current
}

// Query returns a copy of the query with the selection applied.
func (s *Selection) Query() url.Values {
	q := make(url.Values, len(s.query))
	for k, v := range s.query {
		q[k] = append([]string(nil), v...)
	}
	return q
}

// Switch selects target if it is a known tenant and records it in the
// company query parameter. An unknown target changes nothing and returns false.
func (s *Selection) Switch(target string) bool {
	id := strings.ToLower(strings.TrimSpace(target))
	if id == "" || !s.known.Has(id) {
		return false
	}
	s.current = id
	s.query.Set(QueryParam, id)
	return true
}
