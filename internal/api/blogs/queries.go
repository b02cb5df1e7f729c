package blogs

import (
	"strings"

	"riz-interiors-server/internal/domain/blogs"

	"gorm.io/gorm"
)

type listFilters struct {
	isPublished *bool
	search      string
	tag         string
}

func blogsQuery(db *gorm.DB, f listFilters) *gorm.DB {
	q := db.Model(&blogs.Blog{})
	if f.isPublished != nil {
		q = q.Where("is_published = ?", *f.isPublished)
	}
	if f.search != "" {
		pattern := "%" + strings.ToLower(f.search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.tag != "" {
		// Tags are stored as a JSON array, so an element is always
		// quoted; matching the quoted form gives exact membership.
		q = q.Where("tags LIKE ?", `%"`+f.tag+`"%`)
	}
	return q
}
