package sanity

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Query is a parameterized GROQ query. The query text contains only $name
// placeholders; values travel as separate, JSON-encoded request parameters.
// Taxonomy values derive from user-controlled path segments, so they must
// never be interpolated into the query text itself.
type Query struct {
	groq   string
	params map[string]any
}

// NewQuery creates a Query from a GROQ string with $name placeholders.
func NewQuery(groq string) Query {
	return Query{groq: groq, params: make(map[string]any)}
}

// Param binds a value to a $name placeholder. The value is JSON-encoded at
// request time; strings arrive at the store quoted and escaped.
func (q Query) Param(name string, value any) Query {
	q.params[name] = value
	return q
}

// GROQ returns the query text.
func (q Query) GROQ() string {
	return q.groq
}

// Encode returns the URL query values for the request: the query text under
// "query" and each bound parameter under "$name" with its JSON encoding.
func (q Query) Encode() (url.Values, error) {
	values := url.Values{}
	values.Set("query", q.groq)
	for name, v := range q.params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode query param %q: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}
	return values, nil
}
