package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/nabeelsyed11/Kimia-Reality/config"
	"github.com/nabeelsyed11/Kimia-Reality/logger"
	"github.com/nabeelsyed11/Kimia-Reality/middleware"
	"github.com/nabeelsyed11/Kimia-Reality/routes"
	"github.com/nabeelsyed11/Kimia-Reality/storage"
	"github.com/nabeelsyed11/Kimia-Reality/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env, cfg.ServiceName); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Get().Sync()

	if err := config.ConnectDB(cfg); err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer config.Disconnect(context.Background())

	if err := config.EnsureIndexes(context.Background()); err != nil {
		logger.Get().Fatal("Failed to create indexes", zap.Error(err))
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		logger.Get().Fatal("Failed to initialize upload storage", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(logger.RequestLogger())
	e.Use(middleware.Metrics)

	routes.RegisterRoutes(e, cfg, store)

	logger.Get().Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Get().Fatal("Server stopped", zap.Error(err))
	}
}
