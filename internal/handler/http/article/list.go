package article

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"backbar/internal/common/pagination"
	"backbar/internal/handler/http/respond"
	"backbar/internal/observability/logging"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

// ListHandler serves GET /articles: the canonical first listing page with
// pagination metadata and the subcategory filter values.
type ListHandler struct {
	Svc    *artUC.Service
	SEO    *seo.Builder
	Logger *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	result, err := h.Svc.ListPage(ctx, 1)
	if err != nil {
		// For page 1, a page-range miss only means the eligible set is
		// empty. The canonical listing still renders, with zero cards
		// and TotalPages 0; only the numbered routes 404 on emptiness.
		if errors.Is(err, artUC.ErrPageNotFound) {
			result = &artUC.PageResult{
				Metadata: pagination.NewMetadata(0, 1, h.Svc.Pagination.PageSize),
			}
		} else {
			logger.Error("failed to list articles",
				"error", err.Error())
			pagination.RecordError("store")
			writeError(w, err)
			return
		}
	}

	out := ListResponse{
		Articles:      toCards(result.Articles),
		Pagination:    result.Metadata,
		Subcategories: result.Subcategories,
		Canonical:     h.SEO.ArticlesURL(),
	}
	if result.Metadata.HasNext {
		out.NextPage = h.SEO.PageURL(2)
	}

	pagination.RecordRequest(http.StatusOK, 1)

	logger.Info("listing page served",
		"page", 1,
		"returned_count", len(out.Articles),
		"total", result.Metadata.Total,
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, out)
}
