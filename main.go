package main

import (
	"log"
	"net/http"
	"os"

	"thesisai-backend/config"
	"thesisai-backend/handlers"
	"thesisai-backend/middleware"
	"thesisai-backend/repositories"
	"thesisai-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	checkRepo := repositories.NewPlagiarismCheckRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	documentService := services.NewDocumentService(documentRepo)
	plagiarismService := services.NewPlagiarismService(documentRepo, checkRepo)
	aiService := services.NewAIService(openai.NewClient(os.Getenv("OPENAI_API_KEY")))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	plagiarismHandler := handlers.NewPlagiarismHandler(plagiarismService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Documents
			documents := protected.Group("/documents")
			{
				documents.POST("", documentHandler.CreateDocument)
				documents.GET("", documentHandler.GetDocuments)
				documents.GET("/:id", documentHandler.GetDocument)
				documents.PUT("/:id", documentHandler.UpdateDocument)
				documents.DELETE("/:id", documentHandler.DeleteDocument)
			}

			// Plagiarism checks
			plagiarism := protected.Group("/plagiarism")
			{
				plagiarism.POST("/check", plagiarismHandler.CheckDocument)
				plagiarism.GET("/history/:document_id", plagiarismHandler.GetHistory)
				plagiarism.GET("/report/:check_id", plagiarismHandler.GetReport)
			}

			// AI writing assistance
			ai := protected.Group("/ai")
			{
				ai.POST("/check", aiHandler.CheckText)
				ai.POST("/generate", aiHandler.Generate)
				ai.POST("/sources", aiHandler.SuggestSources)
				ai.POST("/analyze-structure", aiHandler.AnalyzeStructure)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
