package sanity

// GROQ query texts. Every listing is scoped to the configured category and
// site channel, ordered by publish time descending, and projects only the
// fields the presentation layer consumes. All filter values are bound as
// $params, never interpolated.

// cardProjection is the field set needed to render a listing card.
const cardProjection = `{
  _id,
  title,
  subtitle,
  slug,
  mainImage {
    asset -> {
      _id,
      url
    },
    alt
  },
  subcategory,
  category,
  tags,
  publishedAt,
  author,
  "excerpt": body[0].children[0].text
}`

// relatedProjection is the minimal field set for a related-article tile.
const relatedProjection = `{
  _id,
  title,
  slug,
  mainImage {
    asset -> {
      url
    },
    alt
  }
}`

// eligible is the predicate every listing variant shares: correct category
// and membership in this publication's channel.
const eligible = `_type == "article" && category == $category && $site in sites`

const allArticlesQuery = `*[` + eligible + `] | order(publishedAt desc) ` + cardProjection

const articleBySlugQuery = `*[_type == "article" && slug.current == $slug][0] {
  _id,
  title,
  subtitle,
  slug,
  mainImage {
    asset -> {
      _id,
      url
    },
    alt
  },
  subcategory,
  category,
  tags,
  body[] {
    ...,
    _type == "image" => {
      ...,
      asset -> {
        _id,
        url
      }
    }
  },
  publishedAt,
  author
}`

const articlesBySubcategoryQuery = `*[` + eligible + ` && subcategory == $subcategory] | order(publishedAt desc) ` + cardProjection

const articlesByTagQuery = `*[` + eligible + ` && $tag in tags] | order(publishedAt desc) ` + cardProjection

const relatedBySubcategoryQuery = `*[` + eligible + ` && subcategory == $subcategory && slug.current != $currentSlug] | order(publishedAt desc)[0...$limit] ` + relatedProjection

const relatedByCategoryQuery = `*[` + eligible + ` && slug.current != $currentSlug] | order(publishedAt desc)[0...$limit] ` + relatedProjection

const countQuery = `count(*[` + eligible + `])`
