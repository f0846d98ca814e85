package models

import (
	"fmt"

	"gorm.io/gorm"

	"privateChat/internal/enums"
)

// MessageRoom is the dyadic conversation container between exactly two users.
// FirstUserID/SecondUserID are fixed slots filled in send order of the first
// message. PairKey normalizes the unordered pair so the unique index rejects a
// duplicate room regardless of slot order; that index is the source of truth
// for the dedup invariant when two sends race.
type MessageRoom struct {
	gorm.Model
	FirstUserID  uint               `gorm:"not null" json:"first_user_id"`
	SecondUserID uint               `gorm:"not null" json:"second_user_id"`
	PairKey      string             `gorm:"index:idx_room_pair,unique,where:deleted_at IS NULL;not null" json:"-"`
	Version      uint               `gorm:"not null;default:0" json:"-"`
	FirstUser    User               `gorm:"foreignKey:FirstUserID" json:"first_user"`
	SecondUser   User               `gorm:"foreignKey:SecondUserID" json:"second_user"`
	LeftBy       []MessageRoomLeave `gorm:"foreignKey:RoomID" json:"left_by"`
	Messages     []Message          `gorm:"foreignKey:RoomID" json:"messages"`
}

// MessageRoomLeave records that one participant has soft-left a room.
// Cardinality per room (0/1/2) drives the room lifecycle state.
type MessageRoomLeave struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	RoomID uint `gorm:"not null;uniqueIndex:idx_room_leave" json:"room_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_room_leave" json:"user_id"`
}

func PairKeyFor(userID1, userID2 uint) string {
	if userID1 > userID2 {
		userID1, userID2 = userID2, userID1
	}
	return fmt.Sprintf("%d:%d", userID1, userID2)
}

func (room *MessageRoom) BeforeCreate(tx *gorm.DB) error {
	room.PairKey = PairKeyFor(room.FirstUserID, room.SecondUserID)
	return nil
}

func (room *MessageRoom) HasParticipant(userID uint) bool {
	return room.FirstUserID == userID || room.SecondUserID == userID
}

func (room *MessageRoom) OtherParticipant(userID uint) uint {
	if room.FirstUserID == userID {
		return room.SecondUserID
	}
	return room.FirstUserID
}

func (room *MessageRoom) HasLeft(userID uint) bool {
	for _, leave := range room.LeftBy {
		if leave.UserID == userID {
			return true
		}
	}
	return false
}

func (room *MessageRoom) State() enums.RoomState {
	return enums.RoomStateOf(len(room.LeftBy))
}

func (room *MessageRoom) ToRoomResponse(requesterID uint, lastMessage *Message, unread int, isBlockedUser bool) RoomResponse {
	messages := []Message{}
	for _, message := range room.Messages {
		if !message.HiddenFor(requesterID) {
			messages = append(messages, message)
		}
	}

	var lastMessageResponse *LastMessageResponse
	if lastMessage != nil {
		lastMessageResponse = &LastMessageResponse{
			Content:   lastMessage.Content,
			CreatedAt: lastMessage.CreatedAt,
		}
	}

	return RoomResponse{
		ID:                 room.ID,
		State:              room.State(),
		Participants:       []*UserResponse{room.FirstUser.ToUserResponse(), room.SecondUser.ToUserResponse()},
		Messages:           messages,
		LastMessage:        lastMessageResponse,
		UnreadMessageCount: unread,
		IsBlockedUser:      isBlockedUser,
		CreatedAt:          room.CreatedAt,
		UpdatedAt:          room.UpdatedAt,
	}
}
