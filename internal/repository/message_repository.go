package repository

import (
	"context"
	"time"

	"github.com/punch/message-store/internal/models"
	"github.com/punch/message-store/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MessageStore persists messages. Errors are always *StorageError.
type MessageStore interface {
	Save(ctx context.Context, message *models.Message) (*models.Message, error)
	FindAll(ctx context.Context) ([]models.Message, error)
}

type MessageRepository struct {
	db *gorm.DB
}

var _ MessageStore = (*MessageRepository)(nil)

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Save inserts a new row and writes the generated ID back into message.
// Messages that already carry an ID are rejected without touching the database.
func (r *MessageRepository) Save(ctx context.Context, message *models.Message) (*models.Message, error) {
	if message == nil {
		return nil, newStorageError("save", ErrNilMessage)
	}
	if message.IsPersisted() {
		logger.Log.Warn("Save called with persisted message",
			zap.Uint64("id", message.ID),
		)
		return nil, newStorageError("save", ErrAlreadyPersisted)
	}

	start := time.Now()
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		// the row was not written, so the record stays unsaved
		message.ID = 0
		logger.Log.Error("Failed to save message",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, newStorageError("save", err)
	}

	logger.Log.Debug("Message saved",
		zap.Uint64("id", message.ID),
		zap.Duration("duration", time.Since(start)),
	)

	return message, nil
}

// FindAll returns every stored message in backend order.
// An empty table gives an empty, non-nil slice.
func (r *MessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	start := time.Now()
	messages := make([]models.Message, 0)

	if err := r.db.WithContext(ctx).Find(&messages).Error; err != nil {
		logger.Log.Error("Failed to list messages",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, newStorageError("find_all", err)
	}

	logger.Log.Debug("Messages listed",
		zap.Int("count", len(messages)),
		zap.Duration("duration", time.Since(start)),
	)

	return messages, nil
}
