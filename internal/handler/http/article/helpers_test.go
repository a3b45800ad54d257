package article_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"backbar/internal/common/pagination"
	"backbar/internal/domain/entity"
	"backbar/internal/handler/http/article"
	"backbar/internal/seo"
	artUC "backbar/internal/usecase/article"
)

/* ───────── stub repository ───────── */

type stubRepo struct {
	all           []*entity.Article
	bySlug        map[string]*entity.Article
	bySubcategory map[string][]*entity.Article
	byTag         map[string][]*entity.Article
	related       []*entity.Article
	recent        []*entity.Article
	err           error

	storeCalls int
}

func (s *stubRepo) ListAll(_ context.Context) ([]*entity.Article, error) {
	s.storeCalls++
	return s.all, s.err
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	s.storeCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.bySlug[slug], nil
}

func (s *stubRepo) ListBySubcategory(_ context.Context, subcategory string) ([]*entity.Article, error) {
	s.storeCalls++
	return s.bySubcategory[subcategory], s.err
}

func (s *stubRepo) ListByTag(_ context.Context, tag string) ([]*entity.Article, error) {
	s.storeCalls++
	return s.byTag[tag], s.err
}

func (s *stubRepo) ListRelated(_ context.Context, _, excludeSlug string, limit int) ([]*entity.Article, error) {
	s.storeCalls++
	return capExcluding(s.related, excludeSlug, limit), s.err
}

func (s *stubRepo) ListRecent(_ context.Context, excludeSlug string, limit int) ([]*entity.Article, error) {
	s.storeCalls++
	return capExcluding(s.recent, excludeSlug, limit), s.err
}

func (s *stubRepo) Ping(_ context.Context) error {
	return s.err
}

func capExcluding(articles []*entity.Article, excludeSlug string, limit int) []*entity.Article {
	out := make([]*entity.Article, 0, limit)
	for _, a := range articles {
		if a.Slug == excludeSlug {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out
}

/* ───────── fixtures ───────── */

func makeArticles(n int) []*entity.Article {
	base := time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)
	articles := make([]*entity.Article, n)
	for i := range articles {
		articles[i] = &entity.Article{
			ID:          fmt.Sprintf("id-%d", i+1),
			Slug:        fmt.Sprintf("article-%d", i+1),
			Title:       fmt.Sprintf("Article %d", i+1),
			Category:    "spirits",
			PublishedAt: base.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return articles
}

// newMux registers the article routes against a stub-backed service so
// tests exercise real ServeMux pattern resolution.
func newMux(repo *stubRepo) *http.ServeMux {
	svc := &artUC.Service{Repo: repo, Pagination: pagination.DefaultConfig()}
	builder := seo.NewBuilder(seo.Config{BaseURL: "https://backbar.fyi"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	article.Register(mux, svc, builder, logger)
	return mux
}
