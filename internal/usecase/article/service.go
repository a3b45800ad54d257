// Package article provides the read-side use cases of the publication:
// paginated listings, taxonomy-scoped views, single-article lookup, homepage
// sections, and the related-content resolver.
package article

import (
	"context"
	"errors"
	"fmt"

	"backbar/internal/common/pagination"
	"backbar/internal/common/taxonomy"
	"backbar/internal/domain/entity"
	"backbar/internal/repository"
)

// Service provides article presentation use cases. It holds no mutable
// state; every method performs fresh reads against the repository.
type Service struct {
	Repo       repository.ArticleRepository
	Pagination pagination.Config
}

// PageResult is one listing page plus the data the listing chrome needs.
type PageResult struct {
	Articles      []*entity.Article
	Metadata      pagination.Metadata
	Subcategories []string
}

// ListPage retrieves the given 1-based listing page over all eligible
// articles. The canonical page-1 rule (page 1 must use the unnumbered
// route) is enforced by the handler; here page 1 is a valid input.
//
// Returns ErrPageNotFound when the page number falls outside the valid
// range, including any page over an empty set.
func (s *Service) ListPage(ctx context.Context, page int) (*PageResult, error) {
	articles, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list page %d: %w", page, err)
	}
	pagination.UpdateTotalCount(len(articles))

	sliced, err := pagination.Slice(articles, page, s.Pagination.PageSize)
	if err != nil {
		if errors.Is(err, pagination.ErrPageOutOfRange) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	return &PageResult{
		Articles:      sliced,
		Metadata:      pagination.NewMetadata(len(articles), page, s.Pagination.PageSize),
		Subcategories: subcategories(articles),
	}, nil
}

// TaxonomyDimension selects the taxonomy axis of a scoped listing.
type TaxonomyDimension string

const (
	// DimensionSubcategory scopes a listing by the finer partition value.
	DimensionSubcategory TaxonomyDimension = "subcategory"
	// DimensionTag scopes a listing by tag membership.
	DimensionTag TaxonomyDimension = "tag"
)

// TaxonomyResult is a taxonomy-scoped listing page.
type TaxonomyResult struct {
	DisplayName string
	Articles    []*entity.Article
	Total       int
}

// ListByTaxonomy retrieves articles scoped by a taxonomy path segment. The
// segment is normalized into the store filter value ("single-malt" queries
// "Single Malt"). Scoped views show a single page of up to PageSize items.
//
// Returns ErrPageNotFound when no article matches: an empty taxonomy view
// is a not-found outcome, not an empty listing.
func (s *Service) ListByTaxonomy(ctx context.Context, dimension TaxonomyDimension, segment string) (*TaxonomyResult, error) {
	value := taxonomy.ToFilterValue(segment)

	var (
		articles []*entity.Article
		err      error
	)
	switch dimension {
	case DimensionSubcategory:
		articles, err = s.Repo.ListBySubcategory(ctx, value)
	case DimensionTag:
		articles, err = s.Repo.ListByTag(ctx, value)
	default:
		return nil, fmt.Errorf("unknown taxonomy dimension %q", dimension)
	}
	if err != nil {
		return nil, fmt.Errorf("list by %s %q: %w", dimension, value, err)
	}

	if len(articles) == 0 {
		return nil, ErrPageNotFound
	}

	total := len(articles)
	if len(articles) > s.Pagination.PageSize {
		articles = articles[:s.Pagination.PageSize]
	}

	return &TaxonomyResult{
		DisplayName: value,
		Articles:    articles,
		Total:       total,
	}, nil
}

// GetBySlug retrieves a single article with its full body.
// Returns ErrInvalidSlug for an empty slug and ErrArticleNotFound when the
// store has no article under the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// HomeResult carries the three homepage sections: the newest article as the
// hero, the next two as sub-features, and the following nine as the grid.
type HomeResult struct {
	Featured    *entity.Article
	SubFeatured []*entity.Article
	Grid        []*entity.Article
}

// Home assembles the homepage sections from the full listing order.
// An empty store yields an empty HomeResult, not an error; the caller
// renders the empty state.
func (s *Service) Home(ctx context.Context) (*HomeResult, error) {
	articles, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("home sections: %w", err)
	}

	result := &HomeResult{}
	if len(articles) == 0 {
		return result, nil
	}

	result.Featured = articles[0]
	if len(articles) > 1 {
		result.SubFeatured = articles[1:min(3, len(articles))]
	}
	if len(articles) > 3 {
		result.Grid = articles[3:min(12, len(articles))]
	}
	return result, nil
}

// subcategories returns the distinct non-empty subcategory values in order
// of first appearance, for the listing filter dropdown.
func subcategories(articles []*entity.Article) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range articles {
		if a.Subcategory == "" {
			continue
		}
		if _, ok := seen[a.Subcategory]; ok {
			continue
		}
		seen[a.Subcategory] = struct{}{}
		out = append(out, a.Subcategory)
	}
	return out
}
