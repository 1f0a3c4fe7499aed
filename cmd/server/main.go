package main

import (
	"log"
	"net/http"
	"os"

	_ "showcase/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"showcase/internal/auth"
	"showcase/internal/cache"
	"showcase/internal/config"
	"showcase/internal/db"
	"showcase/internal/handler"
	"showcase/internal/model"
	"showcase/internal/repository"
	"showcase/internal/router"
	"showcase/internal/service"
)

// @title Project Showcase API
// @version 1.0
// @description Student project showcase with category filtering, vote-based leaderboard and JWT authentication.
// @host localhost:8080
// @BasePath /api
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

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Vote{},
			&model.Project{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Vote{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB, cfg.StoreTimeout)
	projectRepo := repository.NewProjectRepository(gormDB, cfg.StoreTimeout)
	voteRepo := repository.NewVoteRepository(gormDB, cfg.StoreTimeout)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	rolePolicy := auth.NewRolePolicy(cfg.AdminEmails)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, rolePolicy)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	leaderboardService := service.NewLeaderboardService(projectRepo, cacheClient)
	voteService := service.NewVoteService(voteRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	voteHandler := handler.NewVoteHandler(voteService)
	dashboardHandler := handler.NewDashboardHandler(projectService, userService)
	adminHandler := handler.NewAdminHandler(projectService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		projectHandler,
		leaderboardHandler,
		voteHandler,
		dashboardHandler,
		adminHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
