package article

import "errors"

// Sentinel errors returned by the article service. All of them terminate
// the request as a not-found outcome; none are retried.
var (
	// ErrArticleNotFound indicates no article matches the requested slug.
	ErrArticleNotFound = errors.New("article not found")

	// ErrPageNotFound indicates the requested listing page does not exist:
	// out-of-range page number, page 1 requested through the numbered
	// route, or a taxonomy view with no matching articles.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidSlug indicates the slug path segment is empty or malformed.
	ErrInvalidSlug = errors.New("invalid article slug")
)
