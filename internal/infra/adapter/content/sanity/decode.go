package sanity

import (
	"time"

	"backbar/internal/domain/entity"
)

// Wire types mirroring the store's document shape. Only fields named in the
// query projections are populated.

type document struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Slug        slug       `json:"slug"`
	MainImage   *imageDoc  `json:"mainImage"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	Tags        []string   `json:"tags"`
	PublishedAt time.Time  `json:"publishedAt"`
	Author      string     `json:"author"`
	Excerpt     string     `json:"excerpt"`
	Body        []blockDoc `json:"body"`
}

type slug struct {
	Current string `json:"current"`
}

type imageDoc struct {
	Asset   assetDoc `json:"asset"`
	Alt     string   `json:"alt"`
	Caption string   `json:"caption"`
}

type assetDoc struct {
	ID  string `json:"_id"`
	URL string `json:"url"`
}

type blockDoc struct {
	Type     string     `json:"_type"`
	Style    string     `json:"style"`
	Children []spanDoc  `json:"children"`
	Asset    *assetDoc  `json:"asset"`
	Alt      string     `json:"alt"`
	Caption  string     `json:"caption"`
}

type spanDoc struct {
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// toEntity converts a store document into the domain Article.
func (d *document) toEntity() *entity.Article {
	a := &entity.Article{
		ID:          d.ID,
		Slug:        d.Slug.Current,
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Tags:        d.Tags,
		PublishedAt: d.PublishedAt,
		Author:      d.Author,
		Excerpt:     d.Excerpt,
	}

	if d.MainImage != nil {
		a.MainImage = entity.Image{
			AssetID: d.MainImage.Asset.ID,
			URL:     d.MainImage.Asset.URL,
			Alt:     d.MainImage.Alt,
			Caption: d.MainImage.Caption,
		}
	}

	if len(d.Body) > 0 {
		a.Body = make([]entity.Block, 0, len(d.Body))
		for _, b := range d.Body {
			a.Body = append(a.Body, b.toEntity())
		}
	}

	return a
}

func (b *blockDoc) toEntity() entity.Block {
	block := entity.Block{
		Type:  b.Type,
		Style: b.Style,
	}

	if b.Type == "image" && b.Asset != nil {
		block.Image = &entity.Image{
			AssetID: b.Asset.ID,
			URL:     b.Asset.URL,
			Alt:     b.Alt,
			Caption: b.Caption,
		}
		return block
	}

	if len(b.Children) > 0 {
		block.Spans = make([]entity.Span, 0, len(b.Children))
		for _, s := range b.Children {
			block.Spans = append(block.Spans, entity.Span{Text: s.Text, Marks: s.Marks})
		}
	}
	return block
}

// toEntities converts a result set, dropping documents without a slug
// (unrenderable: the slug is the only external lookup key).
func toEntities(docs []document) []*entity.Article {
	articles := make([]*entity.Article, 0, len(docs))
	for i := range docs {
		if docs[i].Slug.Current == "" {
			continue
		}
		articles = append(articles, docs[i].toEntity())
	}
	return articles
}
