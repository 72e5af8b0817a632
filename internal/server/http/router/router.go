package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/freshdairy/freshdairy/internal/server/http/handlers"
	"github.com/freshdairy/freshdairy/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DairyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	contactHandler := handlers.NewContactHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)

	api := engine.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.GET("/products", catalogHandler.List)
	api.POST("/contact", contactHandler.Submit)

	api.POST("/place-order", orderHandler.Place)
	// Legacy storefront route; same handler, userEmail alias in the body.
	api.POST("/orders", orderHandler.Place)
	api.GET("/orders/:email", orderHandler.ListByCustomer)

	api.GET("/notifications/:email", notificationHandler.List)
	api.POST("/notifications", notificationHandler.Create)
	api.POST("/notifications/:id/read", notificationHandler.Acknowledge)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id", adminHandler.UpdateStatus)
	admin.GET("/customers", adminHandler.Customers)
	admin.GET("/messages", adminHandler.Messages)
	admin.GET("/statuses", adminHandler.Statuses)
	admin.GET("/stats", adminHandler.Stats)

	return engine
}
