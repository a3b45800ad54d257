package article

import (
	"log/slog"
	"net/http"
	"time"

	"backbar/internal/handler/http/respond"
	"backbar/internal/observability/logging"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

// GetHandler serves GET /articles/{slug}: the full article with its body
// blocks, the related-content set, canonical URL, and JSON-LD records.
type GetHandler struct {
	Svc    *artUC.Service
	SEO    *seo.Builder
	Logger *slog.Logger
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	slug := r.PathValue("slug")

	art, err := h.Svc.GetBySlug(ctx, slug)
	if err != nil {
		writeError(w, err)
		return
	}

	// Resolver failures surface as upstream errors, never a partial page
	related, err := h.Svc.Related(ctx, art)
	if err != nil {
		logger.Error("failed to resolve related articles",
			"slug", slug,
			"error", err.Error())
		writeError(w, err)
		return
	}

	out := DetailResponse{
		Article:   toDetail(art),
		Canonical: h.SEO.ArticleURL(art.Slug),
		StructuredData: StructuredDataDTO{
			Article:    h.SEO.Article(art),
			Breadcrumb: h.SEO.Breadcrumb(art),
		},
	}
	if len(related) > 0 {
		out.Related = toCards(related)
	}

	logger.Info("article served",
		"slug", slug,
		"related_count", len(related),
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, out)
}
