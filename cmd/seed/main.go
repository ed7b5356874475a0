package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/punch/message-store/internal/config"
	"github.com/punch/message-store/internal/database"
	"github.com/punch/message-store/internal/models"
	"github.com/punch/message-store/internal/repository"
	"github.com/punch/message-store/pkg/logger"
	"go.uber.org/zap"
)

const defaultMessage = "This is a sample message"

// seed saves one message per argument and prints the table afterwards.
// Usage: seed [text...]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.IsDevelopment()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Migration failed", zap.Error(err))
		}
	}

	texts := os.Args[1:]
	if len(texts) == 0 {
		texts = []string{defaultMessage}
	}

	store := repository.NewMessageRepository(db)
	if err := run(ctx, store, texts); err != nil {
		logger.Log.Fatal("Seeding failed",
			zap.String("kind", repository.KindOf(err).String()),
			zap.Error(err),
		)
	}
}

func run(ctx context.Context, store repository.MessageStore, texts []string) error {
	for _, text := range texts {
		msg, err := store.Save(ctx, models.NewMessage(text))
		if err != nil {
			return err
		}
		logger.Log.Info("✅ Message created",
			zap.Uint64("id", msg.ID),
			zap.String("message", msg.Text()),
		)
	}

	messages, err := store.FindAll(ctx)
	if err != nil {
		return err
	}

	logger.Log.Info("Messages in store", zap.Int("count", len(messages)))
	for _, m := range messages {
		logger.Log.Info("   Message",
			zap.Uint64("id", m.ID),
			zap.String("message", m.Text()),
		)
	}

	return nil
}
