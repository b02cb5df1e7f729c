package blogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Modern Living", "modern-living"},
		{"Warm Minimalism, Revisited!", "warm-minimalism-revisited"},
		{"UPPER case Title", "upper-case-title"},
		{"  padded  title  ", "padded-title"},
		{"already-a-slug", "already-a-slug"},
		{"Symbols & Punctuation: Gone?", "symbols-punctuation-gone"},
		{"under_score kept", "under_score-kept"},
		{"Scandi 101", "scandi-101"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Modern Living",
		"Warm Minimalism, Revisited!",
		"a - b -- c",
		"Symbols & Punctuation: Gone?",
	}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slug for %q must be stable under re-derivation", title)
	}
}

func TestSlugifyOutputAlphabet(t *testing.T) {
	for _, title := range []string{"Hello, World!", "Ča ća", "a  b   c", "(Parens) [Brackets]"} {
		slug := Slugify(title)
		for _, r := range slug {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
			assert.True(t, ok, "unexpected rune %q in slug %q", r, slug)
		}
	}
}
