package models

import (
	"time"

	"privateChat/internal/enums"
)

type RoomResponse struct {
	ID                 uint                 `json:"id"`
	State              enums.RoomState      `json:"state"`
	Participants       []*UserResponse      `json:"participants"`
	Messages           []Message            `json:"messages"`
	LastMessage        *LastMessageResponse `json:"last_message"`
	UnreadMessageCount int                  `json:"unread_message_count"`
	IsBlockedUser      bool                 `json:"is_blocked_user"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type LastMessageResponse struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
