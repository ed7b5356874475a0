package testutil

import (
	"github.com/punch/message-store/internal/models"
)

// SampleMessageText is the text used by the basic save/list scenario
const SampleMessageText = "This is a sample message"

// NewSampleMessage returns an unsaved message with SampleMessageText
func NewSampleMessage() *models.Message {
	return models.NewMessage(SampleMessageText)
}

// NewNullMessage returns an unsaved message whose text is NULL
func NewNullMessage() *models.Message {
	return &models.Message{}
}
