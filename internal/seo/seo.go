// Package seo builds the structured-metadata records attached to article
// responses: canonical URLs, a schema.org Article record, and a
// BreadcrumbList record. All builders are pure functions of the article
// and the configured site base URL.
package seo

import (
	"fmt"
	"strings"
	"time"

	"backbar/internal/common/taxonomy"
	"backbar/internal/domain/entity"
	"backbar/pkg/config"
)

const (
	schemaContext = "https://schema.org"
	publisherName = "BACKBAR"
)

// Config holds the public origin used for canonical URLs.
type Config struct {
	// BaseURL is the site origin without a trailing slash,
	// e.g. "https://backbar.fyi".
	BaseURL string
}

// LoadConfigFromEnv reads SITE_BASE_URL, defaulting to the production origin.
func LoadConfigFromEnv() Config {
	return Config{
		BaseURL: strings.TrimRight(config.GetEnvString("SITE_BASE_URL", "https://backbar.fyi"), "/"),
	}
}

// Builder derives canonical URLs and JSON-LD records for a site origin.
type Builder struct {
	baseURL string
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{baseURL: strings.TrimRight(cfg.BaseURL, "/")}
}

func (b *Builder) HomeURL() string     { return b.baseURL }
func (b *Builder) ArticlesURL() string { return b.baseURL + "/articles" }

func (b *Builder) PageURL(page int) string {
	return fmt.Sprintf("%s/articles/page/%d", b.baseURL, page)
}

func (b *Builder) ArticleURL(slug string) string {
	return b.baseURL + "/articles/" + slug
}

func (b *Builder) SubcategoryURL(subcategory string) string {
	return b.baseURL + "/articles/subcategory/" + taxonomy.ToPathSegment(subcategory)
}

func (b *Builder) TagURL(tag string) string {
	return b.baseURL + "/articles/tag/" + taxonomy.ToPathSegment(tag)
}

// PersonLD is a schema.org Person.
type PersonLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// OrganizationLD is a schema.org Organization.
type OrganizationLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// WebPageLD identifies the page an Article record belongs to.
type WebPageLD struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// ArticleLD is the schema.org Article record emitted on detail responses.
type ArticleLD struct {
	Context          string         `json:"@context"`
	Type             string         `json:"@type"`
	Headline         string         `json:"headline"`
	Description      string         `json:"description"`
	Author           PersonLD       `json:"author"`
	DatePublished    string         `json:"datePublished"`
	Image            string         `json:"image,omitempty"`
	Publisher        OrganizationLD `json:"publisher"`
	MainEntityOfPage WebPageLD      `json:"mainEntityOfPage"`
}

// Article builds the schema.org Article record. The publication byline
// falls back to the publisher name when the article carries no author.
func (b *Builder) Article(a *entity.Article) ArticleLD {
	author := a.Author
	if author == "" {
		author = publisherName
	}
	return ArticleLD{
		Context:       schemaContext,
		Type:          "Article",
		Headline:      a.Title,
		Description:   a.Subtitle,
		Author:        PersonLD{Type: "Person", Name: author},
		DatePublished: a.PublishedAt.UTC().Format(time.RFC3339),
		Image:         a.MainImage.URL,
		Publisher:     OrganizationLD{Type: "Organization", Name: publisherName, URL: b.baseURL},
		MainEntityOfPage: WebPageLD{
			Type: "WebPage",
			ID:   b.ArticleURL(a.Slug),
		},
	}
}

// ListItemLD is one rung of a BreadcrumbList.
type ListItemLD struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbLD is the schema.org BreadcrumbList record.
type BreadcrumbLD struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	ItemListElement []ListItemLD `json:"itemListElement"`
}

// Breadcrumb builds Home → Articles → [Subcategory] → Title. The
// subcategory rung is skipped for articles that have none.
func (b *Builder) Breadcrumb(a *entity.Article) BreadcrumbLD {
	items := []ListItemLD{
		{Type: "ListItem", Position: 1, Name: "Home", Item: b.HomeURL()},
		{Type: "ListItem", Position: 2, Name: "Articles", Item: b.ArticlesURL()},
	}
	if a.HasSubcategory() {
		items = append(items, ListItemLD{
			Type:     "ListItem",
			Position: 3,
			Name:     a.Subcategory,
			Item:     b.SubcategoryURL(a.Subcategory),
		})
	}
	items = append(items, ListItemLD{
		Type:     "ListItem",
		Position: len(items) + 1,
		Name:     a.Title,
		Item:     b.ArticleURL(a.Slug),
	})
	return BreadcrumbLD{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}
