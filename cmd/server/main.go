// @title           Appwrite Gateway API
// @version         1.0.0
// @description     HTTP surface over the Appwrite integration layer: session-verified access to documents, file URLs, team role checks and realtime subscriptions.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session secret.

package main

import (
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Stagepoint-Systems/nuxt-appwrite/docs"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/config"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/handlers"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/middleware"
)

func main() {
	// Resolve configuration: inline options take precedence over environment
	// variables. Nothing is supplied inline here, so the environment decides.
	cfg := config.Load(config.Options{})

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	// Accessor wiring. The privileged bundle is probed once up front so a
	// missing endpoint, project ID or API key is visible at startup instead
	// of on the first authenticated request.
	services := appwrite.NewServices(cfg)
	if _, err := services.Privileged(); err != nil {
		log.Printf("Warning: privileged Appwrite client unavailable: %v", err)
		log.Println("Session verification will fail until APPWRITE_ENDPOINT, APPWRITE_PROJECT_ID and APPWRITE_API_KEY are set")
	}

	verifier := appwrite.NewVerifier(cfg, services)
	files := appwrite.NewFiles(cfg)
	realtime := appwrite.NewRealtime(cfg)

	// Initialize handlers
	documentsHandler := handlers.NewDocumentsHandler(cfg, services)
	filesHandler := handlers.NewFilesHandler(files)
	teamsHandler := handlers.NewTeamsHandler(cfg, services)
	realtimeHandler := handlers.NewRealtimeHandler(realtime)

	// Setup router
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(verifier))

	// Account
	api.GET("/me", handlers.GetMe)

	// Documents
	api.GET("/collections/:collection/documents", documentsHandler.ListDocuments)
	api.GET("/collections/:collection/documents/:document_id", documentsHandler.GetDocument)

	// Files
	api.GET("/files/:file_id/urls", filesHandler.GetFileURLs)

	// Teams
	api.GET("/teams/:team_id/roles/:role", teamsHandler.CheckRole)

	// Realtime
	api.POST("/realtime/subscriptions", realtimeHandler.Subscribe)
	api.DELETE("/realtime/subscriptions/:subscription_id", realtimeHandler.Unsubscribe)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
