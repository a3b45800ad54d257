package article_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backbar/internal/handler/http/article"
)

func TestPageHandler_SecondPage(t *testing.T) {
	mux := newMux(&stubRepo{all: makeArticles(14)})

	req := httptest.NewRequest(http.MethodGet, "/articles/page/2", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp article.ListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Articles) != 2 {
		t.Fatalf("cards = %d, want 2", len(resp.Articles))
	}
	if resp.Articles[0].Slug != "article-13" || resp.Articles[1].Slug != "article-14" {
		t.Errorf("slugs = %s, %s", resp.Articles[0].Slug, resp.Articles[1].Slug)
	}
	if resp.Pagination.HasNext {
		t.Error("HasNext = true on last page")
	}
	if resp.NextPage != "" {
		t.Errorf("next_page = %q, want empty on last page", resp.NextPage)
	}
	if resp.Canonical != "https://backbar.fyi/articles/page/2" {
		t.Errorf("canonical = %q", resp.Canonical)
	}
}

// The first page has exactly one URL. The numbered route never serves it.
func TestPageHandler_PageOneAlways404(t *testing.T) {
	mux := newMux(&stubRepo{all: makeArticles(14)})

	req := httptest.NewRequest(http.MethodGet, "/articles/page/1", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestPageHandler_InvalidPages(t *testing.T) {
	mux := newMux(&stubRepo{all: makeArticles(14)})

	for _, page := range []string{"0", "-3", "abc", "2.5", "99"} {
		req := httptest.NewRequest(http.MethodGet, "/articles/page/"+page, nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("page %q: status = %d, want 404", page, rr.Code)
		}
	}
}

func TestPageHandler_EmptySet404(t *testing.T) {
	mux := newMux(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/articles/page/2", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
