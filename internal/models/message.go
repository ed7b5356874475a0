package models

// Message is the only persisted entity. ID is assigned by the database on first insert
// and stays zero until then.
type Message struct {
	ID      uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Message *string `gorm:"column:message" json:"message"` // NULL when nil
}

// TableName overrides the table name for GORM
func (Message) TableName() string {
	return "messages"
}

// NewMessage returns an unsaved message holding text.
func NewMessage(text string) *Message {
	return &Message{Message: &text}
}

// Text returns the message text, or "" when it is NULL.
func (m *Message) Text() string {
	if m == nil || m.Message == nil {
		return ""
	}
	return *m.Message
}

// IsPersisted reports whether the database has assigned an ID.
func (m *Message) IsPersisted() bool {
	return m != nil && m.ID != 0
}
