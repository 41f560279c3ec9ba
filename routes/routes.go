package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nabeelsyed11/Kimia-Reality/chat"
	"github.com/nabeelsyed11/Kimia-Reality/config"
	"github.com/nabeelsyed11/Kimia-Reality/handlers"
	"github.com/nabeelsyed11/Kimia-Reality/middleware"
	"github.com/nabeelsyed11/Kimia-Reality/storage"
)

// RegisterRoutes wires every endpoint. Mutating property/blog/user routes
// and the upload endpoint require an admin token; listing and single-entity
// reads are public.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, store *storage.LocalStore) {
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/uploads", cfg.Upload.Dir)

	propertyController := handlers.NewPropertyController()
	blogController := handlers.NewBlogController()
	authController := handlers.NewAuthController(cfg)
	dashboardController := handlers.NewDashboardController()
	chatController := handlers.NewChatController(chat.New(cfg.Chat.APIKey, cfg.Chat.Model))
	uploadController := handlers.NewUploadController(store)

	api := e.Group("/api")
	admin := e.Group("/api", middleware.JWT(cfg.JWT.Secret), middleware.AdminOnly())

	// Auth
	api.POST("/auth/login", authController.Login)
	admin.POST("/auth/register", authController.Register)

	// Properties
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	admin.POST("/properties", propertyController.CreateProperty)
	admin.PUT("/properties/:id", propertyController.UpdateProperty)
	admin.DELETE("/properties/:id", propertyController.DeleteProperty)

	// Blogs
	api.GET("/blogs", blogController.ListBlogs)
	api.GET("/blogs/:slug", blogController.GetBlog)
	admin.POST("/blogs", blogController.CreateBlog)
	admin.PUT("/blogs/:slug", blogController.UpdateBlog)
	admin.DELETE("/blogs/:slug", blogController.DeleteBlog)

	// Admin dashboard
	admin.GET("/admin/stats", dashboardController.Stats)

	// Site features
	api.POST("/chat", chatController.Chat)
	admin.POST("/upload", uploadController.Upload)
}
