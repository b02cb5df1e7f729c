package collections

import (
	"net/http"
	"strings"

	"riz-interiors-server/internal/api/apierr"
	"riz-interiors-server/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type collectionInput struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// ------------------------------
// POST /api/collections
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req collectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	name := strings.TrimSpace(req.Name)
	image := strings.TrimSpace(req.Image)
	if name == "" || image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name and image are required"})
		return
	}

	// Advisory pre-check for the friendly message; the unique index on
	// name is the authoritative guard.
	var existing gallery.Collection
	err := h.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection with this name already exists"})
		return
	}
	if !apierr.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	collection := gallery.Collection{Name: name, Image: image}
	if err := h.db.Create(&collection).Error; err != nil {
		if apierr.IsUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection with this name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"collection": collection,
	})
}

// ------------------------------
// GET /api/collections
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	var collections []gallery.Collection
	if err := h.db.Order("created_at DESC").Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"collections": collections,
	})
}

// ------------------------------
// PUT /api/collections/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req collectionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	var collection gallery.Collection
	if err := h.db.First(&collection, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if image := strings.TrimSpace(req.Image); image != "" {
		updates["image"] = image
	}

	if len(updates) > 0 {
		if err := h.db.Model(&collection).Updates(updates).Error; err != nil {
			if apierr.IsUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"collection": collection,
	})
}

// ------------------------------
// DELETE /api/collections/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	var imageCount int64
	if err := h.db.Model(&gallery.InteriorImage{}).
		Where("collection_ref = ?", id).
		Count(&imageCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if imageCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot delete collection with existing interior images"})
		return
	}

	var collection gallery.Collection
	if err := h.db.First(&collection, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.db.Delete(&collection).Error; err != nil {
		// The RESTRICT constraint catches an image created between the
		// count above and this delete.
		if apierr.IsFKViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot delete collection with existing interior images"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"collection": collection,
	})
}
