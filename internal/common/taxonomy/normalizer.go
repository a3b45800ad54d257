// Package taxonomy converts between URL path segments and the filter values
// stored on articles.
//
// Path segments are lower-case and hyphen-separated ("single-malt"); store
// values are title-case and space-separated ("Single Malt"). The conversion
// is mechanical: store values with irregular capitalization (e.g. "IPA") do
// not survive a round trip through the path-segment form. That is a known
// limitation, not something this package tries to correct.
package taxonomy

import "strings"

// ToFilterValue converts a URL path segment into the exact-match filter
// value used in store queries: hyphens become spaces and the first letter
// of every word is upper-cased.
//
//	ToFilterValue("single-malt") == "Single Malt"
//	ToFilterValue("rye")         == "Rye"
func ToFilterValue(segment string) string {
	words := strings.Split(strings.ReplaceAll(segment, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ToPathSegment converts a store filter value into its URL path segment
// form: spaces become hyphens and the result is lower-cased. Used only for
// building outbound links.
//
//	ToPathSegment("Single Malt") == "single-malt"
func ToPathSegment(value string) string {
	return strings.ToLower(strings.ReplaceAll(value, " ", "-"))
}
