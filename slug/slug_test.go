package slug_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/unidecode"
	"github.com/npillmayer/unidecode/codepoint"
	"github.com/npillmayer/unidecode/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []slug.Option
		expected string
	}{
		{
			name:     "reference example",
			input:    "Hello, don't \"Über\"-Bacon No. 13###",
			expected: "hello-dont-uber-bacon-no-13",
		},
		{
			name:     "simple text",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with punctuation",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "special characters",
			input:    "Price: $99.99",
			expected: "price-99-99",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "leading and trailing spaces",
			input:    "  Trim Me  ",
			expected: "trim-me",
		},
		{
			name:     "consecutive separators",
			input:    "Too---Many---Dashes",
			expected: "too-many-dashes",
		},
		{
			name:     "underscores separate words",
			input:    "snake_case_name",
			expected: "snake-case-name",
		},
		{
			name:     "unicode diacritics",
			input:    "Café résumé naïve",
			expected: "cafe-resume-naive",
		},
		{
			name:     "german characters",
			input:    "Über Größe straße",
			expected: "uber-grosse-strasse",
		},
		{
			name:     "polish characters",
			input:    "Zażółć gęślą jaźń",
			expected: "zazolc-gesla-jazn",
		},
		{
			name:     "apostrophes are removed",
			input:    "Côte d'Ivoire 2024",
			expected: "cote-divoire-2024",
		},
		{
			name:     "typographic apostrophe",
			input:    "don’t stop",
			expected: "dont-stop",
		},
		{
			name:     "cyrillic",
			input:    "Москва — столица",
			expected: "moskva-stolitsa",
		},
		{
			name:     "chinese",
			input:    "北京市",
			expected: "bei-jing-shi",
		},
		{
			name:     "emoji should be stripped",
			input:    "Hello 😀 World 🌍",
			expected: "hello-world",
		},
		{
			name:     "tabs and newlines",
			input:    "Line1\nLine2\tTabbed",
			expected: "line1-line2-tabbed",
		},
		{
			name:     "url with protocol",
			input:    "https://example.com",
			expected: "https-example-com",
		},
		{
			name:     "malformed input is dropped",
			input:    "bad \xff input",
			expected: "bad-input",
		},
		{
			name:     "mixed case with lowercase false",
			input:    "Hello World",
			opts:     []slug.Option{slug.Lowercase(false)},
			expected: "Hello-World",
		},
		{
			name:     "custom separator",
			input:    "Hello World",
			opts:     []slug.Option{slug.Separator("_")},
			expected: "hello_world",
		},
		{
			name:     "max length",
			input:    "This is a very long title that should be truncated",
			opts:     []slug.Option{slug.MaxLength(20)},
			expected: "this-is-a-very-long",
		},
		{
			name:     "max length with separator",
			input:    "Cut off cleanly",
			opts:     []slug.Option{slug.MaxLength(7)},
			expected: "cut-off",
		},
		{
			name:     "zero max length",
			input:    "Should not truncate",
			opts:     []slug.Option{slug.MaxLength(0)},
			expected: "should-not-truncate",
		},
		{
			name:     "strip specific characters",
			input:    "Remove (these) [chars]",
			opts:     []slug.Option{slug.StripChars("()[]")},
			expected: "remove-these-chars",
		},
		{
			name:  "custom replacements",
			input: "Fish & Chips @ Home",
			opts: []slug.Option{
				slug.CustomReplace(map[string]string{
					"&": "and",
					"@": "at",
				}),
			},
			expected: "fish-and-chips-at-home",
		},
		{
			name:  "longest replacement wins",
			input: "c++ and c# and c",
			opts: []slug.Option{
				slug.CustomReplace(map[string]string{
					"c":   "see",
					"c++": "cpp",
					"c#":  "csharp",
				}),
			},
			expected: "cpp-and-csharp-and-see",
		},
		{
			name:     "replacement before transliteration",
			input:    "5 € and 7 €",
			opts:     []slug.Option{slug.CustomReplace(map[string]string{"€": "euro"})},
			expected: "5-euro-and-7-euro",
		},
		{
			name:  "all options combined",
			input: "COMPLEX & Test @ 2024!!!",
			opts: []slug.Option{
				slug.Separator("_"),
				slug.Lowercase(false),
				slug.MaxLength(15),
				slug.StripChars("!"),
				slug.CustomReplace(map[string]string{
					"&": "AND",
					"@": "AT",
				}),
			},
			expected: "COMPLEX_AND_Tes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Make(tt.input, tt.opts...))
		})
	}
}

func TestSlugifyReportsMalformedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unidecode.slug")
	defer teardown()
	//
	s := slug.New()
	out, err := s.Slugify("bad \xff input")
	assert.Empty(t, out)
	require.ErrorIs(t, err, codepoint.ErrMalformed)
	//
	out, err = s.Slugify("Hello, don't \"Über\"-Bacon No. 13###")
	require.NoError(t, err)
	assert.Equal(t, "hello-dont-uber-bacon-no-13", out)
}

func TestWithTransliterator(t *testing.T) {
	s := slug.New(slug.WithTransliterator(unidecode.New(unidecode.SkipMalformed("x"))))
	out, err := s.Slugify("a\xffb")
	require.NoError(t, err)
	assert.Equal(t, "axb", out)
}

func TestSlugsAreURLSafe(t *testing.T) {
	inputs := []string{
		"Ærøskøbing", "Ελληνικά", "日本語のテキスト", "한국어", "עברית", "العربية",
		"ﬁnancial ½ report", "𝐁𝐨𝐥𝐝 𝑰𝒕𝒂𝒍𝒊𝒄",
	}
	for _, in := range inputs {
		out := slug.Make(in)
		for i := 0; i < len(out); i++ {
			c := out[i]
			ok := c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-'
			assert.Truef(t, ok, "slug %q of %q contains %q", out, in, c)
		}
		assert.NotContains(t, out, "--")
	}
}
