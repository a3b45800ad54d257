package article

import (
	"time"

	"backbar/internal/common/pagination"
	"backbar/internal/domain/entity"
	"backbar/internal/seo"
)

// ImageDTO is an image reference in a JSON response.
type ImageDTO struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CardDTO is the listing-card shape used by every multi-article view.
type CardDTO struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Subcategory string    `json:"subcategory,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Author      string    `json:"author,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	MainImage   *ImageDTO `json:"main_image,omitempty"`
	Excerpt     string    `json:"excerpt,omitempty"`
}

// SpanDTO is a run of text inside a body block.
type SpanDTO struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// BlockDTO is one rich-content block of an article body.
type BlockDTO struct {
	Type  string    `json:"type"`
	Style string    `json:"style,omitempty"`
	Spans []SpanDTO `json:"spans,omitempty"`
	Image *ImageDTO `json:"image,omitempty"`
}

// DetailDTO is the full article shape served by the detail route.
type DetailDTO struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt time.Time  `json:"published_at"`
	MainImage   *ImageDTO  `json:"main_image,omitempty"`
	Body        []BlockDTO `json:"body"`
}

// StructuredDataDTO carries the JSON-LD records attached to a detail
// response.
type StructuredDataDTO struct {
	Article    seo.ArticleLD    `json:"article"`
	Breadcrumb seo.BreadcrumbLD `json:"breadcrumb"`
}

// HomeResponse is the homepage payload: one featured article, two
// sub-featured, and the remaining grid.
type HomeResponse struct {
	Featured    *CardDTO  `json:"featured,omitempty"`
	SubFeatured []CardDTO `json:"sub_featured,omitempty"`
	Grid        []CardDTO `json:"grid,omitempty"`
	Canonical   string    `json:"canonical"`
}

// ListResponse is a listing page payload.
type ListResponse struct {
	Articles      []CardDTO           `json:"articles"`
	Pagination    pagination.Metadata `json:"pagination"`
	Subcategories []string            `json:"subcategories,omitempty"`
	Canonical     string              `json:"canonical"`
	NextPage      string              `json:"next_page,omitempty"`
}

// TaxonomyResponse is a taxonomy-scoped listing payload.
type TaxonomyResponse struct {
	Name      string    `json:"name"`
	Articles  []CardDTO `json:"articles"`
	Total     int       `json:"total"`
	Canonical string    `json:"canonical"`
}

// DetailResponse is the article detail payload. Related is omitted entirely
// when the resolver returns nothing.
type DetailResponse struct {
	Article        DetailDTO         `json:"article"`
	Related        []CardDTO         `json:"related,omitempty"`
	Canonical      string            `json:"canonical"`
	StructuredData StructuredDataDTO `json:"structured_data"`
}

func toImage(img entity.Image) *ImageDTO {
	if img.URL == "" {
		return nil
	}
	return &ImageDTO{URL: img.URL, Alt: img.Alt, Caption: img.Caption}
}

func toCard(a *entity.Article) CardDTO {
	return CardDTO{
		Slug:        a.Slug,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Subcategory: a.Subcategory,
		Tags:        a.Tags,
		Author:      a.Author,
		PublishedAt: a.PublishedAt,
		MainImage:   toImage(a.MainImage),
		Excerpt:     a.Excerpt,
	}
}

func toCards(articles []*entity.Article) []CardDTO {
	cards := make([]CardDTO, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, toCard(a))
	}
	return cards
}

func toBlocks(blocks []entity.Block) []BlockDTO {
	out := make([]BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		dto := BlockDTO{Type: b.Type, Style: b.Style}
		for _, s := range b.Spans {
			dto.Spans = append(dto.Spans, SpanDTO{Text: s.Text, Marks: s.Marks})
		}
		if b.Image != nil {
			dto.Image = toImage(*b.Image)
		}
		out = append(out, dto)
	}
	return out
}

func toDetail(a *entity.Article) DetailDTO {
	return DetailDTO{
		Slug:        a.Slug,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Category:    a.Category,
		Subcategory: a.Subcategory,
		Tags:        a.Tags,
		Author:      a.Author,
		PublishedAt: a.PublishedAt,
		MainImage:   toImage(a.MainImage),
		Body:        toBlocks(a.Body),
	}
}
