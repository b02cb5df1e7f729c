package routes

import (
	blogsapi "riz-interiors-server/internal/api/blogs"
	collectionsapi "riz-interiors-server/internal/api/collections"
	consultationsapi "riz-interiors-server/internal/api/consultations"
	interiorsapi "riz-interiors-server/internal/api/interiors"
	"riz-interiors-server/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeJSONInput())

	collections := collectionsapi.NewHandler(db)
	col := api.Group("/collections")
	col.POST("", collections.Create)
	col.GET("", collections.List)
	col.PUT("/:id", collections.Update)
	col.DELETE("/:id", collections.Delete)

	interiors := interiorsapi.NewHandler(db)
	img := api.Group("/interior-images")
	img.POST("", interiors.Create)
	img.GET("", interiors.List)
	img.GET("/:id", interiors.Get)
	img.PUT("/:id", interiors.Update)
	img.DELETE("/:id", interiors.Delete)

	blogs := blogsapi.NewHandler(db)
	blg := api.Group("/blogs")
	blg.POST("", blogs.Create)
	blg.GET("", blogs.List)
	blg.GET("/id/:id", blogs.GetByID)
	blg.GET("/:slug", blogs.GetBySlug)
	blg.PUT("/:id", blogs.Update)
	blg.DELETE("/:id", blogs.Delete)

	consultations := consultationsapi.NewHandler(db)
	con := api.Group("/consultations")
	con.POST("", consultations.Submit)
	con.GET("", consultations.List)
	con.GET("/:id", consultations.Get)
	con.PUT("/:id", consultations.UpdateStatus)
	con.DELETE("/:id", consultations.Delete)
}
