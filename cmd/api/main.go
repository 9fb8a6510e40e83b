package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/middleware"
	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	redisClient := models.InitRedis(cfg)
	defer redisClient.Close()

	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatalf("Failed to init storage service: %v", err)
	}
	authService := services.NewAuthService(cfg)
	emailService := services.NewEmailService(cfg)
	exportService := services.NewExportService(db, cfg)
	profileService := services.NewProfileService(db, cfg, storageService)
	resumeService := services.NewResumeService(db, cfg)
	gigService := services.NewGigService(db, cfg)
	offeringService := services.NewOfferingService(db, cfg)
	skillService := services.NewSkillService(db, cfg, storageService)
	testimonialService := services.NewTestimonialService(db, cfg, storageService)
	portfolioService := services.NewPortfolioService(db, cfg, storageService)
	blogService := services.NewBlogService(db, cfg, storageService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(redisClient, cfg))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	uploadHandler := handlers.NewUploadHandler(storageService, cfg)
	contactHandler := handlers.NewContactHandler(emailService, cfg)
	profileHandler := handlers.NewProfileHandler(profileService, exportService)
	resumeHandler := handlers.NewResumeHandler(resumeService, exportService)
	gigHandler := handlers.NewGigHandler(gigService)
	serviceHandler := handlers.NewServiceHandler(offeringService)
	skillHandler := handlers.NewSkillHandler(skillService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	blogHandler := handlers.NewBlogHandler(blogService)

	// Health check outside API group
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Setup routes
	api := router.Group("/api/v1")
	{
		// Catch-all OPTIONS handler for CORS preflight requests
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		// Public routes
		api.GET("/profile", profileHandler.Get)
		api.GET("/profile/qr", profileHandler.QR)
		api.GET("/resume", resumeHandler.Get)
		api.GET("/resume/pdf", resumeHandler.PDF)
		api.GET("/gig", gigHandler.Get)
		api.GET("/services", serviceHandler.List)
		api.GET("/skills", skillHandler.List)
		api.GET("/testimonials", testimonialHandler.List)
		api.GET("/portfolios", portfolioHandler.List)
		api.POST("/portfolios/:id/react", portfolioHandler.React)
		api.GET("/blogs", blogHandler.List)
		api.GET("/blogs/:id", blogHandler.Get)
		api.POST("/contact", contactHandler.Send)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly(cfg))
		{
			admin.POST("/profile", profileHandler.Create)
			admin.PUT("/profile/:id", profileHandler.Update)
			admin.DELETE("/profile/:id", profileHandler.Delete)

			admin.POST("/resume", resumeHandler.Create)
			admin.PUT("/resume/:id", resumeHandler.Update)
			admin.DELETE("/resume/:id", resumeHandler.Delete)

			admin.POST("/gig", gigHandler.Create)
			admin.PUT("/gig/:id", gigHandler.Update)
			admin.DELETE("/gig/:id", gigHandler.Delete)

			admin.POST("/services", serviceHandler.Create)
			admin.PUT("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.PUT("/skills", skillHandler.Save)
			admin.DELETE("/skills", skillHandler.Delete)

			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.POST("/portfolios", portfolioHandler.Create)
			admin.PUT("/portfolios/:id", portfolioHandler.Update)
			admin.DELETE("/portfolios/:id", portfolioHandler.Delete)

			admin.POST("/blogs", blogHandler.Create)
			admin.PUT("/blogs/:id", blogHandler.Update)
			admin.DELETE("/blogs/:id", blogHandler.Delete)

			// Upload route with its own daily cap
			uploadGroup := admin.Group("")
			uploadGroup.Use(middleware.UploadRateLimit(redisClient, cfg))
			{
				uploadGroup.POST("/upload", uploadHandler.Upload)
			}
		}
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
