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

// SubcategoryHandler serves GET /articles/subcategory/{subcategory}: the
// listing scoped to one subcategory. An empty result is 404, matching the
// navigation contract that every linked taxonomy page has content.
type SubcategoryHandler struct {
	Svc    *artUC.Service
	SEO    *seo.Builder
	Logger *slog.Logger
}

func (h SubcategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveTaxonomy(w, r, h.Svc, h.Logger, artUC.DimensionSubcategory, r.PathValue("subcategory"), h.SEO.SubcategoryURL)
}

// TagHandler serves GET /articles/tag/{tag} with the same contract as the
// subcategory route.
type TagHandler struct {
	Svc    *artUC.Service
	SEO    *seo.Builder
	Logger *slog.Logger
}

func (h TagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveTaxonomy(w, r, h.Svc, h.Logger, artUC.DimensionTag, r.PathValue("tag"), h.SEO.TagURL)
}

func serveTaxonomy(
	w http.ResponseWriter,
	r *http.Request,
	svc *artUC.Service,
	baseLogger *slog.Logger,
	dimension artUC.TaxonomyDimension,
	segment string,
	canonical func(string) string,
) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, baseLogger)

	result, err := svc.ListByTaxonomy(ctx, dimension, segment)
	if err != nil {
		writeError(w, err)
		return
	}

	out := TaxonomyResponse{
		Name:      result.DisplayName,
		Articles:  toCards(result.Articles),
		Total:     result.Total,
		Canonical: canonical(result.DisplayName),
	}

	logger.Info("taxonomy view served",
		"dimension", string(dimension),
		"value", result.DisplayName,
		"returned_count", len(out.Articles),
		"total", result.Total,
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, out)
}
