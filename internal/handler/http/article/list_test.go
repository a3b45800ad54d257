package article_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"backbar/internal/handler/http/article"
	"backbar/internal/repository"
)

func TestListHandler_FirstPage(t *testing.T) {
	mux := newMux(&stubRepo{all: makeArticles(14)})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp article.ListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Articles) != 12 {
		t.Errorf("cards = %d, want 12", len(resp.Articles))
	}
	if resp.Pagination.Total != 14 || resp.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
	if !resp.Pagination.HasNext {
		t.Error("HasNext = false, want true")
	}
	if resp.NextPage != "https://backbar.fyi/articles/page/2" {
		t.Errorf("next_page = %q", resp.NextPage)
	}
	if resp.Canonical != "https://backbar.fyi/articles" {
		t.Errorf("canonical = %q", resp.Canonical)
	}
}

func TestListHandler_EmptyStoreStillRenders(t *testing.T) {
	mux := newMux(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp article.ListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Articles) != 0 {
		t.Errorf("cards = %d, want 0", len(resp.Articles))
	}
	if resp.Pagination.TotalPages != 0 {
		t.Errorf("total_pages = %d, want 0 for empty set", resp.Pagination.TotalPages)
	}
	if resp.NextPage != "" {
		t.Errorf("next_page = %q, want empty", resp.NextPage)
	}
}

func TestListHandler_SubcategoriesInOrder(t *testing.T) {
	articles := makeArticles(4)
	articles[0].Subcategory = "Rye"
	articles[1].Subcategory = "Mezcal"
	articles[3].Subcategory = "Rye"
	mux := newMux(&stubRepo{all: articles})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	var resp article.ListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"Rye", "Mezcal"}
	if len(resp.Subcategories) != len(want) {
		t.Fatalf("subcategories = %v, want %v", resp.Subcategories, want)
	}
	for i := range want {
		if resp.Subcategories[i] != want[i] {
			t.Errorf("subcategories[%d] = %q, want %q", i, resp.Subcategories[i], want[i])
		}
	}
}

func TestListHandler_StoreUnavailable(t *testing.T) {
	mux := newMux(&stubRepo{err: fmt.Errorf("query articles: %w", repository.ErrStoreUnavailable)})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "content store unavailable" {
		t.Errorf("error = %q", body["error"])
	}
}
