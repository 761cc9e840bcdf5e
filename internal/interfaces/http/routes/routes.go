// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/config"
	"github.com/soqi-sistemas/pedefacil-backend/internal/interfaces/http/handlers"
	"github.com/soqi-sistemas/pedefacil-backend/internal/interfaces/http/middleware"
)

// SetupRoutes configures all API routes. The storefront surface is
// public; everything under /admin requires an admin bearer token.
func SetupRoutes(api *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)
	settingsHandler := handlers.NewSettingsHandler(db, redisClient, cfg)
	uploadHandler := handlers.NewUploadHandler(db, cfg)
	reportHandler := handlers.NewReportHandler(db, redisClient, cfg)

	// Public storefront routes
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.GET("/settings", settingsHandler.GetSettings)

	cartRoutes := api.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
		cartRoutes.POST("/items", cartHandler.AddItem)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateItem)
		cartRoutes.PUT("/items/:id/note", cartHandler.SetItemNote)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	api.POST("/orders", orderHandler.SubmitOrder)
	api.GET("/orders/:number", orderHandler.TrackOrder)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg))
	{
		admin.POST("/categories", catalogHandler.CreateCategory)
		admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
		admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

		admin.GET("/orders", orderHandler.ListOrders)
		admin.GET("/orders/:id", orderHandler.GetOrder)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)

		admin.PUT("/settings", settingsHandler.UpdateSettings)

		admin.POST("/upload", uploadHandler.UploadImage)
		admin.DELETE("/upload/:id", uploadHandler.DeleteImage)

		admin.GET("/reports/sales", reportHandler.GetSalesSummary)
		admin.GET("/reports/sales/pdf", reportHandler.DownloadSalesReport)
	}
}
