package main

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"riz-interiors-server/config"
	"riz-interiors-server/database"
	routes "riz-interiors-server/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.CORS_ORIGINS,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db)

	// Static assets the mobile app and stores fetch directly.
	r.Static("/public", config.STATIC_DIR)
	r.StaticFile("/privacypolicy", filepath.Join(config.STATIC_DIR, "privacypolicy.html"))
	r.StaticFile("/app-ads.txt", filepath.Join(config.STATIC_DIR, "app-ads.txt"))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Riz Interiors backend server")
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Route not found"})
	})

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal(err)
	}
}
