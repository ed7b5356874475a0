package testutil

import (
	"context"
	"testing"

	"github.com/punch/message-store/internal/models"
	"github.com/punch/message-store/internal/repository"
)

// MustSave saves a new message with text and fails the test on error
func MustSave(t *testing.T, store repository.MessageStore, text string) *models.Message {
	t.Helper()

	msg, err := store.Save(context.Background(), models.NewMessage(text))
	if err != nil {
		t.Fatalf("Failed to save message %q: %v", text, err)
	}
	return msg
}
