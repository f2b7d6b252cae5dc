package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"photoshare-backend/internal/config"
	"photoshare-backend/internal/db"
	"photoshare-backend/internal/handlers"
	"photoshare-backend/internal/repository"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// Init DB
	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	if err := db.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories and services
	userRepo := repository.NewPostgresUserRepository(db.Pool)
	photoRepo := repository.NewPostgresPhotoRepository(db.Pool)
	userService := services.NewUserService(userRepo, cfg)
	photoService := services.NewPhotoService(photoRepo)

	// Fiber App
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Ensure upload dir exists and serve uploaded files
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload dir: %v", err)
	}
	app.Static("/uploads", cfg.UploadDir)

	// Routes
	api := app.Group("/api")
	authRequired := handlers.AuthMiddleware([]byte(cfg.JWTSecret), userRepo)

	users := api.Group("/users")
	users.Post("/", handlers.RegisterHandler(userService))
	users.Post("/login", handlers.LoginHandler(userService))
	users.Get("/profile", authRequired, handlers.GetProfileHandler())
	users.Put("/", authRequired, handlers.UpdateProfileHandler(userService, cfg.UploadDir))
	users.Get("/:id", handlers.GetUserByIDHandler(userService))

	photos := api.Group("/photos")
	photos.Post("/", authRequired, handlers.InsertPhotoHandler(photoService, cfg.UploadDir))
	photos.Get("/", handlers.GetAllPhotosHandler(photoService))
	photos.Get("/search", handlers.SearchPhotosHandler(photoService))
	photos.Get("/user/:id", handlers.GetUserPhotosHandler(photoService))
	photos.Get("/:id", handlers.GetPhotoByIDHandler(photoService))
	photos.Put("/:id", authRequired, handlers.UpdatePhotoHandler(photoService))
	photos.Delete("/:id", authRequired, handlers.DeletePhotoHandler(photoService))
	photos.Put("/:id/like", authRequired, handlers.LikePhotoHandler(photoService))
	photos.Put("/:id/comment", authRequired, handlers.CommentPhotoHandler(photoService))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
