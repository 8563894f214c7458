package main

import (
	"context"
	"flag"
	"log"

	"go-product-catalog/config"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/pkg/database"
	"go-product-catalog/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	drop := flag.Bool("drop", false, "drop every catalog and admin table before migrating")
	seed := flag.Bool("seed", true, "seed default privileges and the admin account")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.LoadEnv()

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.ConnectDB(cfg.Postgres)
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}

	if *drop {
		if err := database.DropAll(db, model.AllModels()...); err != nil {
			zlog.Fatal("drop tables", zap.Error(err))
		}
		zlog.Info("tables dropped")
	}
	if err := database.Migrate(db, model.AllModels()...); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}
	zlog.Info("schema migrated", zap.Int("tables", len(model.AllModels())))

	if *seed {
		err := service.SeedDefaults(context.Background(), repository.NewPrivilegeRepo(db), repository.NewUserRepo(db), cfg.Admin, zlog)
		if err != nil {
			zlog.Fatal("seed defaults", zap.Error(err))
		}
	}
}
