package article

import (
	"log/slog"
	"net/http"

	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

// Register registers all article-related HTTP routes with the given mux:
// the homepage, the canonical and numbered listings, the taxonomy-scoped
// views, and the article detail route. The scoped routes are literal
// segments, so the ServeMux resolves them ahead of the {slug} wildcard.
func Register(mux *http.ServeMux, svc *artUC.Service, seoBuilder *seo.Builder, logger *slog.Logger) {
	mux.Handle("GET /{$}", HomeHandler{Svc: svc, SEO: seoBuilder})
	mux.Handle("GET /articles", ListHandler{Svc: svc, SEO: seoBuilder, Logger: logger})
	mux.Handle("GET /articles/page/{page}", PageHandler{Svc: svc, SEO: seoBuilder, Logger: logger})
	mux.Handle("GET /articles/subcategory/{subcategory}", SubcategoryHandler{Svc: svc, SEO: seoBuilder, Logger: logger})
	mux.Handle("GET /articles/tag/{tag}", TagHandler{Svc: svc, SEO: seoBuilder, Logger: logger})
	mux.Handle("GET /articles/{slug}", GetHandler{Svc: svc, SEO: seoBuilder, Logger: logger})
}
