package blogs

import (
	"regexp"
	"strings"
)

var (
	nonSlug   = regexp.MustCompile(`[^\w\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// Slugify derives the URL slug for a post title.
// Example: "Warm Minimalism, Revisited!" -> "warm-minimalism-revisited".
// The transform is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
