package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"backbar/internal/domain/entity"
)

func testBuilder() *Builder {
	return NewBuilder(Config{BaseURL: "https://backbar.fyi"})
}

func TestCanonicalURLs(t *testing.T) {
	b := testBuilder()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"home", b.HomeURL(), "https://backbar.fyi"},
		{"articles", b.ArticlesURL(), "https://backbar.fyi/articles"},
		{"page", b.PageURL(2), "https://backbar.fyi/articles/page/2"},
		{"article", b.ArticleURL("rye-basics"), "https://backbar.fyi/articles/rye-basics"},
		{"subcategory", b.SubcategoryURL("Single Malt"), "https://backbar.fyi/articles/subcategory/single-malt"},
		{"tag", b.TagURL("Bar Tools"), "https://backbar.fyi/articles/tag/bar-tools"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestNewBuilder_TrimsTrailingSlash(t *testing.T) {
	b := NewBuilder(Config{BaseURL: "https://backbar.fyi/"})
	if got := b.ArticlesURL(); got != "https://backbar.fyi/articles" {
		t.Errorf("ArticlesURL = %q", got)
	}
}

func TestArticleRecord(t *testing.T) {
	a := &entity.Article{
		Slug:        "rye-basics",
		Title:       "Rye Basics",
		Subtitle:    "A field guide",
		Author:      "Dana Cole",
		PublishedAt: time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC),
		MainImage:   entity.Image{URL: "https://cdn.example/rye.jpg"},
	}

	ld := testBuilder().Article(a)

	if ld.Context != "https://schema.org" || ld.Type != "Article" {
		t.Errorf("context/type = %q/%q", ld.Context, ld.Type)
	}
	if ld.Headline != "Rye Basics" || ld.Description != "A field guide" {
		t.Errorf("headline/description = %q/%q", ld.Headline, ld.Description)
	}
	if ld.Author.Name != "Dana Cole" {
		t.Errorf("author = %q", ld.Author.Name)
	}
	if ld.DatePublished != "2025-11-02T09:30:00Z" {
		t.Errorf("datePublished = %q", ld.DatePublished)
	}
	if ld.MainEntityOfPage.ID != "https://backbar.fyi/articles/rye-basics" {
		t.Errorf("mainEntityOfPage = %q", ld.MainEntityOfPage.ID)
	}
	if ld.Publisher.Name != "BACKBAR" {
		t.Errorf("publisher = %q", ld.Publisher.Name)
	}
}

func TestArticleRecord_Fallbacks(t *testing.T) {
	a := &entity.Article{
		Slug:        "house-notes",
		Title:       "House Notes",
		PublishedAt: time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC),
	}

	ld := testBuilder().Article(a)

	if ld.Author.Name != "BACKBAR" {
		t.Errorf("author fallback = %q, want BACKBAR", ld.Author.Name)
	}

	// No image: the field must be absent from the serialized record.
	raw, err := json.Marshal(ld)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"image"`) {
		t.Errorf("serialized record contains empty image: %s", raw)
	}
}

func TestBreadcrumb_WithSubcategory(t *testing.T) {
	a := &entity.Article{
		Slug:        "rye-basics",
		Title:       "Rye Basics",
		Subcategory: "Single Malt",
	}

	bc := testBuilder().Breadcrumb(a)

	if bc.Type != "BreadcrumbList" {
		t.Errorf("type = %q", bc.Type)
	}
	if len(bc.ItemListElement) != 4 {
		t.Fatalf("items = %d, want 4", len(bc.ItemListElement))
	}
	sub := bc.ItemListElement[2]
	if sub.Name != "Single Malt" || sub.Item != "https://backbar.fyi/articles/subcategory/single-malt" {
		t.Errorf("subcategory rung = %+v", sub)
	}
	last := bc.ItemListElement[3]
	if last.Position != 4 || last.Name != "Rye Basics" {
		t.Errorf("title rung = %+v", last)
	}
}

func TestBreadcrumb_WithoutSubcategory(t *testing.T) {
	a := &entity.Article{Slug: "house-notes", Title: "House Notes"}

	bc := testBuilder().Breadcrumb(a)

	if len(bc.ItemListElement) != 3 {
		t.Fatalf("items = %d, want 3", len(bc.ItemListElement))
	}
	last := bc.ItemListElement[2]
	if last.Position != 3 || last.Name != "House Notes" {
		t.Errorf("title rung = %+v", last)
	}
}
