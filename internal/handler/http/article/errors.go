package article

import (
	"errors"
	"net/http"

	"backbar/internal/handler/http/respond"
	"backbar/internal/repository"
	artUC "backbar/internal/usecase/article"
)

// writeError maps use-case and repository errors onto the response
// taxonomy: lookup misses are 404, an unreachable content store is 502 with
// a stable body, everything else is a masked 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrPageNotFound):
		respond.JSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, repository.ErrStoreUnavailable):
		respond.JSON(w, http.StatusBadGateway, map[string]string{"error": "content store unavailable"})
	case errors.Is(err, artUC.ErrInvalidSlug):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
