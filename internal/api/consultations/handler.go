package consultations

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"riz-interiors-server/internal/api/apierr"
	"riz-interiors-server/internal/domain/consultations"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 10

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type submitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// ------------------------------
// POST /api/consultations
// ------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req submitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Service == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
		return
	}

	if !consultations.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide a valid email address"})
		return
	}
	if !consultations.ValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide a valid phone number"})
		return
	}

	consultation := consultations.Consultation{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	}
	// The service enum lives in the store schema; an invalid value
	// comes back as a CHECK violation.
	if err := h.db.Create(&consultation).Error; err != nil {
		if apierr.IsCheckViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid service type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"consultation": consultation,
	})
}

// ------------------------------
// GET /api/consultations
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

	query := func() *gorm.DB {
		q := h.db.Model(&consultations.Consultation{})
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		return q
	}

	var totalConsultations int64
	if err := query().Count(&totalConsultations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	var records []consultations.Consultation
	if err := query().
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"consultations":      records,
		"totalConsultations": totalConsultations,
		"totalPages":         int(math.Ceil(float64(totalConsultations) / float64(limit))),
		"currentPage":        page,
	})
}

// ------------------------------
// GET /api/consultations/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")

	var consultation consultations.Consultation
	if err := h.db.First(&consultation, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultation request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"consultation": consultation,
	})
}

// ------------------------------
// PUT /api/consultations/:id
// ------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	if !consultations.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid status is required"})
		return
	}

	var consultation consultations.Consultation
	if err := h.db.First(&consultation, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultation request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.db.Model(&consultation).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"consultation": consultation,
	})
}

// ------------------------------
// DELETE /api/consultations/:id
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	var consultation consultations.Consultation
	if err := h.db.First(&consultation, "id = ?", id).Error; err != nil {
		if apierr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Consultation request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.db.Delete(&consultation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"consultation": consultation,
	})
}
