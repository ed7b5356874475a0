package main

import (
	"context"
	"log"
	"os"

	"github.com/punch/message-store/internal/config"
	"github.com/punch/message-store/internal/database"
	"github.com/punch/message-store/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}

	err = run(db)
	database.Close(db)

	if err != nil {
		logger.Log.Error("Migration failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(db *gorm.DB) error {
	return database.Migrate(db)
}
