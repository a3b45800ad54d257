package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"backbar/internal/common/pagination"
	"backbar/internal/handler/http/respond"
	"backbar/internal/observability/logging"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

// PageHandler serves GET /articles/page/{page}: numbered listing pages from
// 2 upward.
//
// Page 1 on this route is always 404: the first page has exactly one URL,
// /articles, so search engines never see duplicate listings. Non-numeric
// and out-of-range page values are 404 as well.
type PageHandler struct {
	Svc    *artUC.Service
	SEO    *seo.Builder
	Logger *slog.Logger
}

func (h PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	page, err := strconv.Atoi(r.PathValue("page"))
	if err != nil || page <= 1 {
		pagination.RecordError("invalid_page")
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	result, err := h.Svc.ListPage(ctx, page)
	if err != nil {
		if errors.Is(err, artUC.ErrPageNotFound) {
			pagination.RecordError("out_of_range")
		} else {
			logger.Error("failed to list page",
				"page", page,
				"error", err.Error())
			pagination.RecordError("store")
		}
		writeError(w, err)
		return
	}

	out := ListResponse{
		Articles:      toCards(result.Articles),
		Pagination:    result.Metadata,
		Subcategories: result.Subcategories,
		Canonical:     h.SEO.PageURL(page),
	}
	if result.Metadata.HasNext {
		out.NextPage = h.SEO.PageURL(page + 1)
	}

	pagination.RecordRequest(http.StatusOK, page)

	logger.Info("listing page served",
		"page", page,
		"returned_count", len(out.Articles),
		"total", result.Metadata.Total,
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, out)
}
