package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "portfolio/docs" // swagger docs

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// @title Portfolio CMS API
// @version 1.0
// @description Content-management backend for a portfolio/blog site with JWT authentication and an admin role gate.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Blog{},
		&model.Project{},
		&model.Testimonial{},
		&model.ContactMessage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("storage init: %v", err)
	}
	ingester := storage.NewIngester(store)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)
	contactRepo := repository.NewContactMessageRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	blogService := service.NewBlogService(blogRepo, cacheClient)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	testimonialService := service.NewTestimonialService(testimonialRepo, cacheClient)
	contactService := service.NewContactService(contactRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService, ingester)
	projectHandler := handler.NewProjectHandler(projectService, ingester)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService, ingester)
	contactHandler := handler.NewContactHandler(contactService)

	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		blogHandler,
		projectHandler,
		testimonialHandler,
		contactHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == config.StorageS3 {
		return storage.NewS3(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewLocal(cfg.UploadsDir)
}
