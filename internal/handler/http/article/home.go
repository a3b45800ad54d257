// Package article provides the HTTP handlers for the article routes: the
// homepage sections, the paginated listing, taxonomy-scoped views, and the
// article detail page.
package article

import (
	"net/http"

	"backbar/internal/handler/http/respond"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

// HomeHandler serves GET /: the homepage sections sliced from the full
// eligible listing (featured, sub-featured, grid).
type HomeHandler struct {
	Svc *artUC.Service
	SEO *seo.Builder
}

func (h HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	home, err := h.Svc.Home(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := HomeResponse{
		SubFeatured: toCards(home.SubFeatured),
		Grid:        toCards(home.Grid),
		Canonical:   h.SEO.HomeURL(),
	}
	if home.Featured != nil {
		featured := toCard(home.Featured)
		out.Featured = &featured
	}

	respond.JSON(w, http.StatusOK, out)
}
