package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lostandfound/internal/config"
	"lostandfound/internal/handler"
	"lostandfound/internal/middleware"
	"lostandfound/internal/queue"
	"lostandfound/internal/repository"
	"lostandfound/internal/service"
	"lostandfound/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const maxBodyBytes = 50 << 20 // 50MB, JSON and multipart alike

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHours := int64(1) // session tokens expire after one hour
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 1: %v", err)
		} else {
			jwtExpHours = parsed
		}
	}

	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = "4001"
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	if err := os.MkdirAll(uploadsDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create uploads directory %s: %v", uploadsDir, err)
	}
	log.Printf("Uploads will be stored in: %s", uploadsDir)

	imagesDir := os.Getenv("IMAGES_DIR")
	if imagesDir == "" {
		imagesDir = "upload/images"
	}

	codeTTL := 5 * time.Minute
	if v := os.Getenv("VERIFICATION_CODE_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid VERIFICATION_CODE_TTL, defaulting to 5m: %v", err)
		} else {
			codeTTL = parsed
		}
	}

	smsTopic := os.Getenv("KAFKA_SMS_TOPIC")
	if smsTopic == "" {
		smsTopic = "sms-notifications"
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)
	hasher := utils.NewBcryptHasher()

	smsProducer := queue.NewSMSProducer(
		os.Getenv("KAFKA_BROKER"),
		smsTopic,
		os.Getenv("KAFKA_USERNAME"),
		os.Getenv("KAFKA_PASSWORD"),
	)
	defer smsProducer.Close()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	itemRepo := repository.NewItemRepository(dbPool)

	// --- Initialize Services ---
	codeStore := service.NewCodeStore(codeTTL)
	authService := service.NewAuthService(userRepo, hasher, jwtUtil, smsProducer, codeStore)
	userService := service.NewUserService(userRepo, uploadsDir)
	itemService := service.NewItemService(itemRepo, userRepo)

	// --- Initialize Handlers ---
	handler.RegisterValidations()
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemService)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.MaxMultipartMemory = maxBodyBytes

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Cap request bodies before any handler reads them
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	// Uploaded images are public
	router.Static("/uploads", uploadsDir)
	router.Static("/images", imagesDir)

	// --- Register Routes ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	userHandler.RegisterUserRoutes(apiGroup, jwtAuthMW)
	itemHandler.RegisterItemRoutes(apiGroup, jwtAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
