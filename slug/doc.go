// Package slug generates URL-safe slugs from arbitrary Unicode text.
//
// Text is transliterated to ASCII first (see package unidecode), so that scripts
// other than Latin produce readable slugs instead of vanishing:
//
//	slug.Make("Hello, don't \"Über\"-Bacon No. 13###")
//	// Output: "hello-dont-uber-bacon-no-13"
//
//	slug.Make("Москва — столица")
//	// Output: "moskva-stolitsa"
//
// After transliteration, apostrophes are removed, the text is lowercased and every
// run of characters other than ASCII letters and digits becomes a single
// separator. Leading and trailing separators are trimmed.
//
// # Configuration Options
//
// Separator sets the string used between words:
//
//	slug.Make("Product Name", slug.Separator("_"))
//	// Output: "product_name"
//
// Lowercase controls case conversion:
//
//	slug.Make("Product Name", slug.Lowercase(false))
//	// Output: "Product-Name"
//
// MaxLength limits the slug length; a separator left at the end is trimmed:
//
//	slug.Make("Cut off cleanly", slug.MaxLength(8))
//	// Output: "cut-off"
//
// StripChars sets the characters which are removed instead of separating words
// (default "'"):
//
//	slug.Make("Remove (these) [chars]", slug.StripChars("()[]"))
//	// Output: "remove-these-chars"
//
// CustomReplace applies replacements before transliteration, longest match first:
//
//	slug.Make("Fish & Chips @ Home", slug.CustomReplace(map[string]string{"&": "and", "@": "at"}))
//	// Output: "fish-and-chips-at-home"
//
// Make silently drops malformed UTF-8. Use a Slugifier and its Slugify method
// to be told about it.
package slug

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unidecode.slug'
func tracer() tracing.Trace {
	return tracing.Select("unidecode.slug")
}
