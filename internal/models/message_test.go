package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_TableName(t *testing.T) {
	assert.Equal(t, "messages", Message{}.TableName())
}

func TestNewMessage(t *testing.T) {
	msg := NewMessage("This is a sample message")

	require.NotNil(t, msg.Message)
	assert.Equal(t, "This is a sample message", *msg.Message)
	assert.Zero(t, msg.ID)
	assert.False(t, msg.IsPersisted())
}

func TestNewMessage_DoesNotAliasCaller(t *testing.T) {
	text := "original"
	msg := NewMessage(text)

	*msg.Message = "changed"

	assert.Equal(t, "original", text)
	assert.Equal(t, "changed", msg.Text())
}

func TestMessage_Text(t *testing.T) {
	testCases := []struct {
		name     string
		msg      *Message
		expected string
	}{
		{name: "nil message", msg: nil, expected: ""},
		{name: "NULL text", msg: &Message{ID: 3}, expected: ""},
		{name: "empty text", msg: NewMessage(""), expected: ""},
		{name: "text", msg: NewMessage("hello"), expected: "hello"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.msg.Text())
		})
	}
}

func TestMessage_IsPersisted(t *testing.T) {
	var nilMsg *Message
	assert.False(t, nilMsg.IsPersisted())
	assert.False(t, (&Message{}).IsPersisted())
	assert.True(t, (&Message{ID: 1}).IsPersisted())
}
