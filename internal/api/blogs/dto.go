package blogs

import (
	"time"

	"riz-interiors-server/internal/domain/blogs"
)

type blogInput struct {
	Title       string   `json:"title"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

// blogSummary is the list projection: everything except Content, which
// is deliberately excluded from list responses.
type blogSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	CoverImage  string     `json:"coverImage"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Tags        blogs.Tags `json:"tags"`
	IsPublished bool       `json:"isPublished"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toSummary(b blogs.Blog) blogSummary {
	return blogSummary{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		CoverImage:  b.CoverImage,
		Excerpt:     b.Excerpt,
		Author:      b.Author,
		Tags:        b.Tags,
		IsPublished: b.IsPublished,
		CreatedAt:   b.CreatedAt,
	}
}
