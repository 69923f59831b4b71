package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rneelams/TaskManager---backend/config"
	"github.com/rneelams/TaskManager---backend/db"
	authhandler "github.com/rneelams/TaskManager---backend/internal/auth/handler"
	authrepo "github.com/rneelams/TaskManager---backend/internal/auth/repository/postgres"
	"github.com/rneelams/TaskManager---backend/internal/auth/service"
	todohandler "github.com/rneelams/TaskManager---backend/internal/todo/handler"
	todorepo "github.com/rneelams/TaskManager---backend/internal/todo/repository/postgres"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to create db pool: %v", err)
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := service.NewUserService(userRepo, tokenService)
	authHandler := authhandler.NewAuthHandler(userService)

	todoRepo := todorepo.NewPostgresRepository(dbPool)
	todoHandler := todohandler.NewTodoHandler(todoRepo)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, x-refresh-token, _id",
	}))

	authhandler.RegisterRoutes(app, authHandler)
	todohandler.RegisterRoutes(app, todoHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
