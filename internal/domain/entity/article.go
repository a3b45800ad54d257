// Package entity defines the core domain entities for the publication.
// It contains the Article record served by every listing and detail route,
// along with its taxonomy values and domain-specific errors.
package entity

import "time"

// Article represents a single publishable article as returned by the
// content store. Articles are immutable snapshots: the store owns all
// writes, this service only reads.
type Article struct {
	ID          string
	Slug        string
	Title       string
	Subtitle    string
	Category    string
	Subcategory string
	Tags        []string
	PublishedAt time.Time
	Author      string
	MainImage   Image
	Body        []Block
	Excerpt     string
}

// Image is an asset reference with its alt text and optional caption.
type Image struct {
	AssetID string
	URL     string
	Alt     string
	Caption string
}

// Block is a single rich-content block in an article body.
// Text blocks carry spans; image blocks carry an embedded Image.
type Block struct {
	Type  string
	Style string
	Spans []Span
	Image *Image
}

// Span is a run of text inside a text block.
type Span struct {
	Text  string
	Marks []string
}

// HasSubcategory reports whether the article carries the finer taxonomy
// partition used by the related-content resolver.
func (a *Article) HasSubcategory() bool {
	return a.Subcategory != ""
}

// FirstText returns the first text run of the first body block, which the
// store exposes as the listing excerpt. Empty when the body starts with a
// non-text block or is empty.
func (a *Article) FirstText() string {
	for _, b := range a.Body {
		if b.Type != "block" {
			continue
		}
		if len(b.Spans) == 0 {
			return ""
		}
		return b.Spans[0].Text
	}
	return ""
}
