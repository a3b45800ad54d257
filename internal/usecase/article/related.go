package article

import (
	"context"
	"fmt"

	"backbar/internal/domain/entity"
)

// relatedLimit is the display size of the related-content rail.
const relatedLimit = 3

// Related produces up to three articles to show alongside the reference
// article, using a strict two-step fallback:
//
//  1. If the reference has a subcategory, query its subcategory siblings
//     (excluding the reference itself), newest first, capped at three.
//  2. If that yields fewer than three — including when step 1 was skipped
//     because there is no subcategory — the partial set is discarded
//     entirely and replaced by the three newest category-wide articles
//     (again excluding the reference).
//
// The fallback replaces rather than tops up: a reference with one or two
// siblings shows three category-wide articles instead of its siblings
// padded out. Do not merge the two sets.
//
// An empty result is valid: callers omit the related section entirely.
func (s *Service) Related(ctx context.Context, ref *entity.Article) ([]*entity.Article, error) {
	if ref.HasSubcategory() {
		siblings, err := s.Repo.ListRelated(ctx, ref.Subcategory, ref.Slug, relatedLimit)
		if err != nil {
			return nil, fmt.Errorf("related by subcategory: %w", err)
		}
		if len(siblings) >= relatedLimit {
			return siblings[:relatedLimit], nil
		}
	}

	recent, err := s.Repo.ListRecent(ctx, ref.Slug, relatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related by category: %w", err)
	}
	if len(recent) > relatedLimit {
		recent = recent[:relatedLimit]
	}
	return recent, nil
}
