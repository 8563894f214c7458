package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-product-catalog/config"
	"go-product-catalog/internal/handler"
	"go-product-catalog/internal/middleware"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/internal/ws"
	"go-product-catalog/pkg/database"
	"go-product-catalog/pkg/jwt"
	"go-product-catalog/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.LoadEnv()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Postgres)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}
	if err := database.Migrate(db, model.AllModels()...); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}

	// 3. Seed default privileges and admin user
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	if err := service.SeedDefaults(context.Background(), privilegeRepo, userRepo, cfg.Admin, zlog); err != nil {
		zlog.Warn("seed defaults", zap.Error(err))
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(zlog.Named("ws"))
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TTLHours)*time.Hour, cfg.JWT.Issuer)
	catalogService := service.NewCatalogService(db, wsHub, zlog.Named("catalog"))
	summaryService := service.NewSummaryService(repository.NewSummaryRepo(db), repository.NewSeasonalEventRepo(db))
	authService := service.NewAuthService(userRepo, tokens, zlog.Named("auth"))

	media := &handler.MediaStore{Root: cfg.Server.MediaRoot}
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService, zlog),
		Catalog:    handler.NewCatalogHandler(catalogService, media, zlog),
		Summary:    handler.NewSummaryHandler(summaryService, zlog),
		Privileges: privilegeRepo,
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Product Catalog Admin v1.0",
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	app.Static("/media", cfg.Server.MediaRoot)
	handler.RegisterRoutes(app, handlers, middleware.RequireAuth(tokens, userRepo))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Panic("listen", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.AppEnv))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zlog.Info("server exited")
}
