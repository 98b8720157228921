package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reviewhub/config"
	"reviewhub/controllers"
	"reviewhub/db"
	"reviewhub/middlewares"
	"reviewhub/routes"
	"reviewhub/services"
)

func main() {
	// Optional .env for local development; the yaml config is authoritative.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	reviewService, err := services.NewReviewService(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize review service: %v", err)
	}
	if !reviewService.AIEnabled() {
		log.Println("No Gemini API key configured; serving deterministic reviews only")
	}
	extractorService := services.NewExtractorService(cfg)

	controllers.InitAuthController(cfg)
	controllers.InitReviewController(reviewService, extractorService)

	// Directory for uploaded documents
	os.MkdirAll("uploads", os.ModePerm)

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// CORS for the browser frontend (e.g. localhost:5173 for Vite)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)

	// Protected routes
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg))
	{
		routes.SetupReviewRoutes(auth)
	}

	return router
}
