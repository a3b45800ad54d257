// Package repository declares the read-only access patterns this service
// needs against the external content store. Implementations live under
// internal/infra/adapter.
package repository

import (
	"context"

	"backbar/internal/domain/entity"
)

// ArticleRepository is the query gateway to the content store.
//
// Every listing method returns only eligible articles (publication category
// and channel membership applied store-side) ordered by published_at
// descending. Each call is a fresh read: no retries, no caching.
type ArticleRepository interface {
	// ListAll retrieves every eligible article.
	ListAll(ctx context.Context) ([]*entity.Article, error)

	// GetBySlug retrieves a single article by its slug, including the full
	// body. Returns (nil, nil) when no article has the slug; absence is a
	// valid outcome, not an error.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)

	// ListBySubcategory retrieves eligible articles whose subcategory
	// exactly matches the given store filter value.
	ListBySubcategory(ctx context.Context, subcategory string) ([]*entity.Article, error)

	// ListByTag retrieves eligible articles carrying the given tag.
	ListByTag(ctx context.Context, tag string) ([]*entity.Article, error)

	// ListRelated retrieves up to limit eligible articles in the given
	// subcategory, excluding the article identified by excludeSlug.
	ListRelated(ctx context.Context, subcategory, excludeSlug string, limit int) ([]*entity.Article, error)

	// ListRecent retrieves up to limit eligible articles across the whole
	// category, excluding the article identified by excludeSlug. This is
	// the category-wide fallback leg of the related-content resolver.
	ListRecent(ctx context.Context, excludeSlug string, limit int) ([]*entity.Article, error)

	// Ping performs a cheap query to verify the store is reachable.
	Ping(ctx context.Context) error
}
