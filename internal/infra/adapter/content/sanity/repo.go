package sanity

import (
	"context"
	"fmt"

	"backbar/internal/domain/entity"
	"backbar/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository against the content
// store. All scoping (category, channel membership, ordering) happens
// store-side via the shared query predicate.
type ArticleRepo struct {
	client *Client
	config Config
}

// NewArticleRepo creates an ArticleRepo using the given client.
func NewArticleRepo(client *Client) *ArticleRepo {
	return &ArticleRepo{client: client, config: client.config}
}

// scoped binds the category and site channel parameters shared by every
// listing query.
func (r *ArticleRepo) scoped(groq string) Query {
	return NewQuery(groq).
		Param("category", r.config.Category).
		Param("site", r.config.Site)
}

// ListAll retrieves every eligible article, newest first.
func (r *ArticleRepo) ListAll(ctx context.Context) ([]*entity.Article, error) {
	var docs []document
	if err := r.client.Query(ctx, "list_all", r.scoped(allArticlesQuery), &docs); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return toEntities(docs), nil
}

// GetBySlug retrieves a single article with its full body. Returns
// (nil, nil) when the slug matches nothing.
func (r *ArticleRepo) GetBySlug(ctx context.Context, slugVal string) (*entity.Article, error) {
	var doc *document
	q := NewQuery(articleBySlugQuery).Param("slug", slugVal)
	if err := r.client.Query(ctx, "get_by_slug", q, &doc); err != nil {
		return nil, fmt.Errorf("get article %q: %w", slugVal, err)
	}
	if doc == nil || doc.Slug.Current == "" {
		return nil, nil
	}
	return doc.toEntity(), nil
}

// ListBySubcategory retrieves eligible articles in the given subcategory.
func (r *ArticleRepo) ListBySubcategory(ctx context.Context, subcategory string) ([]*entity.Article, error) {
	var docs []document
	q := r.scoped(articlesBySubcategoryQuery).Param("subcategory", subcategory)
	if err := r.client.Query(ctx, "list_by_subcategory", q, &docs); err != nil {
		return nil, fmt.Errorf("list articles by subcategory %q: %w", subcategory, err)
	}
	return toEntities(docs), nil
}

// ListByTag retrieves eligible articles carrying the given tag.
func (r *ArticleRepo) ListByTag(ctx context.Context, tag string) ([]*entity.Article, error) {
	var docs []document
	q := r.scoped(articlesByTagQuery).Param("tag", tag)
	if err := r.client.Query(ctx, "list_by_tag", q, &docs); err != nil {
		return nil, fmt.Errorf("list articles by tag %q: %w", tag, err)
	}
	return toEntities(docs), nil
}

// ListRelated retrieves up to limit same-subcategory articles excluding the
// reference slug.
func (r *ArticleRepo) ListRelated(ctx context.Context, subcategory, excludeSlug string, limit int) ([]*entity.Article, error) {
	var docs []document
	q := r.scoped(relatedBySubcategoryQuery).
		Param("subcategory", subcategory).
		Param("currentSlug", excludeSlug).
		Param("limit", limit)
	if err := r.client.Query(ctx, "list_related", q, &docs); err != nil {
		return nil, fmt.Errorf("list related articles: %w", err)
	}
	return toEntities(docs), nil
}

// ListRecent retrieves up to limit articles across the whole category
// excluding the reference slug.
func (r *ArticleRepo) ListRecent(ctx context.Context, excludeSlug string, limit int) ([]*entity.Article, error) {
	var docs []document
	q := r.scoped(relatedByCategoryQuery).
		Param("currentSlug", excludeSlug).
		Param("limit", limit)
	if err := r.client.Query(ctx, "list_recent", q, &docs); err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return toEntities(docs), nil
}

// Ping runs the count query to verify the store answers.
func (r *ArticleRepo) Ping(ctx context.Context) error {
	var count int
	if err := r.client.Query(ctx, "ping", r.scoped(countQuery), &count); err != nil {
		return fmt.Errorf("ping content store: %w", err)
	}
	return nil
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
