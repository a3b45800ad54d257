package sanity

import (
	"strings"
	"testing"
)

func TestQueryEncode(t *testing.T) {
	q := NewQuery(`*[slug.current == $slug][0]`).Param("slug", "rye-basics")

	values, err := q.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := values.Get("query"); got != `*[slug.current == $slug][0]` {
		t.Errorf("query = %q", got)
	}
	// String params are JSON-encoded: quoted and escaped.
	if got := values.Get("$slug"); got != `"rye-basics"` {
		t.Errorf("$slug = %q, want %q", got, `"rye-basics"`)
	}
}

func TestQueryEncode_IntParam(t *testing.T) {
	values, err := NewQuery(`*[][0...$limit]`).Param("limit", 3).Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := values.Get("$limit"); got != "3" {
		t.Errorf("$limit = %q, want 3", got)
	}
}

// A hostile path segment never reaches the query text; it stays a quoted
// JSON string in its own parameter.
func TestQueryEncode_NoInjection(t *testing.T) {
	hostile := `x"] | order(publishedAt desc) // `
	q := NewQuery(articlesBySubcategoryQuery).
		Param("category", "spirits").
		Param("site", "backbar").
		Param("subcategory", hostile)

	values, err := q.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(values.Get("query"), hostile) {
		t.Error("filter value leaked into query text")
	}
	if got := values.Get("$subcategory"); !strings.HasPrefix(got, `"`) || !strings.HasSuffix(got, `"`) {
		t.Errorf("$subcategory not JSON-quoted: %q", got)
	}
}

func TestEligiblePredicateSharedByListings(t *testing.T) {
	for name, groq := range map[string]string{
		"all":         allArticlesQuery,
		"subcategory": articlesBySubcategoryQuery,
		"tag":         articlesByTagQuery,
		"related":     relatedBySubcategoryQuery,
		"recent":      relatedByCategoryQuery,
		"count":       countQuery,
	} {
		if !strings.Contains(groq, `category == $category`) || !strings.Contains(groq, `$site in sites`) {
			t.Errorf("%s query missing eligibility predicate", name)
		}
		if name != "count" && !strings.Contains(groq, "order(publishedAt desc)") {
			t.Errorf("%s query missing descending publish order", name)
		}
	}
}
