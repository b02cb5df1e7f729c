package blogs

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"riz-interiors-server/internal/api/apierr"
	"riz-interiors-server/internal/domain/blogs"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxExcerptLen   = 200
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func validateRequired(req blogInput) (string, bool) {
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.CoverImage) == "" ||
		strings.TrimSpace(req.Content) == "" ||
		strings.TrimSpace(req.Excerpt) == "" {
		return "Title, cover image, content, and excerpt are required", false
	}
	if len([]rune(req.Excerpt)) > maxExcerptLen {
		return "Excerpt must be at most 200 characters", false
	}
	return "", true
}

// ------------------------------
// POST /api/blogs
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req blogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if msg, ok := validateRequired(req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	blog := blogs.Blog{
		Title:       req.Title,
		Slug:        blogs.Slugify(req.Title),
		CoverImage:  req.CoverImage,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      blogs.DefaultAuthor,
		Tags:        blogs.Tags{},
		IsPublished: true,
	}
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.Tags != nil {
		blog.Tags = blogs.Tags(req.Tags)
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	// Slug uniqueness is enforced by the store; a collision surfaces
	// here as a duplicate-key error rather than via a pre-check.
	if err := h.db.Create(&blog).Error; err != nil {
		if apierr.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A blog post with this title already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"blog":    blog,
	})
}

// ------------------------------
// GET /api/blogs
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}

	filters := listFilters{
		search: c.Query("search"),
		tag:    c.Query("tag"),
	}
	if raw := c.Query("isPublished"); raw != "" {
		published := raw == "true"
		filters.isPublished = &published
	}

	var totalBlogs int64
	if err := blogsQuery(h.db, filters).Count(&totalBlogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	var records []blogs.Blog
	if err := blogsQuery(h.db, filters).
		Select("id", "title", "slug", "cover_image", "excerpt", "author", "tags", "created_at", "is_published").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	items := make([]blogSummary, 0, len(records))
	for _, b := range records {
		items = append(items, toSummary(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"blogs":       items,
		"totalBlogs":  totalBlogs,
		"totalPages":  int(math.Ceil(float64(totalBlogs) / float64(limit))),
		"currentPage": page,
	})
}

// ------------------------------
// GET /api/blogs/:slug (public; drafts are invisible here)
// ------------------------------
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var blog blogs.Blog
	err := h.db.Where("slug = ? AND is_published = ?", slug, true).First(&blog).Error
	if err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
	})
}

// ------------------------------
// GET /api/blogs/id/:id (admin; publication state ignored)
// ------------------------------
func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var blog blogs.Blog
	if err := h.db.First(&blog, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
	})
}

// ------------------------------
// PUT /api/blogs/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req blogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if msg, ok := validateRequired(req); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	var blog blogs.Blog
	if err := h.db.First(&blog, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Slug is recomputed only when the title actually changed, so an
	// unchanged title keeps its published URL.
	if req.Title != blog.Title {
		blog.Slug = blogs.Slugify(req.Title)
	}
	blog.Title = req.Title
	blog.CoverImage = req.CoverImage
	blog.Content = req.Content
	blog.Excerpt = req.Excerpt
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.Tags != nil {
		blog.Tags = blogs.Tags(req.Tags)
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	if err := h.db.Save(&blog).Error; err != nil {
		if apierr.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A blog post with this title already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
	})
}

// ------------------------------
// DELETE /api/blogs/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	var blog blogs.Blog
	if err := h.db.First(&blog, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.db.Delete(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
	})
}
