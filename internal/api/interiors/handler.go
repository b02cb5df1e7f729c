package interiors

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"riz-interiors-server/internal/api/apierr"
	"riz-interiors-server/internal/domain/gallery"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 12

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// collectionExists resolves a collectionRef against the collection
// store. The handler is the primary integrity gate; the FK constraint
// only backstops the race between this check and the write.
func (h *Handler) collectionExists(ref string) (bool, error) {
	var col gallery.Collection
	err := h.db.Select("id").First(&col, "id = ?", ref).Error
	if err == nil {
		return true, nil
	}
	if apierr.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// ------------------------------
// POST /api/interior-images
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req interiorImageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	ref := strings.TrimSpace(req.CollectionRef)
	if req.Name == "" || req.Image == "" || ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, image and collectionRef are required"})
		return
	}

	ok, err := h.collectionExists(ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection not found"})
		return
	}

	interiorImage := gallery.InteriorImage{
		Name:          req.Name,
		Image:         req.Image,
		CollectionRef: ref,
	}
	if err := h.db.Create(&interiorImage).Error; err != nil {
		if apierr.IsFKViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"interiorImage": interiorImage,
	})
}

// ------------------------------
// GET /api/interior-images
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

	collectionRef := c.Query("collectionRef")
	search := c.Query("search")

	var totalImages int64
	if err := imagesQuery(h.db, collectionRef, search).Count(&totalImages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	var images []gallery.InteriorImage
	if err := imagesQuery(h.db, collectionRef, search).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	collections, err := resolveCollections(h.db, images)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	items := make([]InteriorImageDTO, 0, len(images))
	for _, img := range images {
		items = append(items, toDTO(img, collections))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"interiorImages": items,
		"totalImages":    totalImages,
		"totalPages":     int(math.Ceil(float64(totalImages) / float64(limit))),
		"currentPage":    page,
	})
}

// ------------------------------
// GET /api/interior-images/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	var interiorImage gallery.InteriorImage
	if err := h.db.First(&interiorImage, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Interior image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	collections, err := resolveCollections(h.db, []gallery.InteriorImage{interiorImage})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"interiorImage": toDTO(interiorImage, collections),
	})
}

// ------------------------------
// PUT /api/interior-images/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req interiorImageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	ref := strings.TrimSpace(req.CollectionRef)
	if req.Name == "" || req.Image == "" || ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name, image and collectionRef are required"})
		return
	}

	var interiorImage gallery.InteriorImage
	if err := h.db.First(&interiorImage, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Interior image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ok, err := h.collectionExists(ref)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection not found"})
		return
	}

	interiorImage.Name = req.Name
	interiorImage.Image = req.Image
	interiorImage.CollectionRef = ref
	if err := h.db.Save(&interiorImage).Error; err != nil {
		if apierr.IsFKViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	collections, err := resolveCollections(h.db, []gallery.InteriorImage{interiorImage})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"interiorImage": toDTO(interiorImage, collections),
	})
}

// ------------------------------
// DELETE /api/interior-images/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	var interiorImage gallery.InteriorImage
	if err := h.db.First(&interiorImage, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Interior image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.db.Delete(&interiorImage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"interiorImage": interiorImage,
	})
}
