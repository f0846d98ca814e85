package models

import (
	"time"

	"privateChat/internal/enums"
)

// Message lives and dies with its room. Unlike rooms, messages are hard
// deleted once both participants have left them, so there is no DeletedAt.
type Message struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomID     uint           `gorm:"not null;index" json:"room_id"`
	SenderID   uint           `gorm:"not null" json:"sender_id"`
	ReceiverID uint           `gorm:"not null" json:"receiver_id"`
	Sender     User           `gorm:"foreignKey:SenderID" json:"sender"`
	Receiver   User           `gorm:"foreignKey:ReceiverID" json:"receiver"`
	Content    string         `gorm:"not null" json:"content"`
	IsRead     bool           `gorm:"not null;default:false" json:"is_read"`
	LeftBy     []MessageLeave `gorm:"foreignKey:MessageID" json:"left_by"`
	CreatedAt  time.Time      `json:"created_at"`
}

// MessageLeave records that one participant has individually cleared a
// message from their view. At cardinality 2 the message row is purged.
type MessageLeave struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	MessageID uint `gorm:"not null;uniqueIndex:idx_message_leave" json:"message_id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_message_leave" json:"user_id"`
}

func (message *Message) HiddenFor(userID uint) bool {
	for _, leave := range message.LeftBy {
		if leave.UserID == userID {
			return true
		}
	}
	return false
}

func (message *Message) State() enums.MessageState {
	return enums.MessageStateOf(len(message.LeftBy))
}
