package repositories

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"privateChat/internal/errs"
	"privateChat/internal/models"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

func withDeletedUsers(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// FindOrCreateRoom returns the unique non-deleted room for the unordered
// participant pair, creating it when absent. The find-then-create sequence is
// a race window between concurrent sends; the partial unique index on
// pair_key is the actual source of truth, and a create conflict falls back to
// the lookup instead of failing the send.
func (chr *ChatRepository) FindOrCreateRoom(senderID, receiverID uint) (*models.MessageRoom, []error) {
	pairKey := models.PairKeyFor(senderID, receiverID)

	room, err := chr.findRoomByPairKey(pairKey)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, []error{err}
	}

	newRoom := &models.MessageRoom{
		FirstUserID:  senderID,
		SecondUserID: receiverID,
	}
	if createErr := chr.db.Create(newRoom).Error; createErr != nil {
		room, err := chr.findRoomByPairKey(pairKey)
		if err != nil {
			return nil, []error{createErr}
		}
		log.Printf("Room create conflict for pair %s, reusing room %d", pairKey, room.ID)
		return room, nil
	}
	return newRoom, nil
}

func (chr *ChatRepository) findRoomByPairKey(pairKey string) (*models.MessageRoom, error) {
	var room models.MessageRoom
	err := chr.db.
		Preload("LeftBy").
		Where("pair_key = ?", pairKey).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoomByID loads a room with its full relational context: both
// participants (including soft-deleted accounts), the leave markers and the
// messages in creation order with their own senders, receivers and markers.
// The room row itself is loaded unscoped so a closed room is distinguishable
// from an absent one.
func (chr *ChatRepository) GetRoomByID(roomID uint) (*models.MessageRoom, []error) {
	var room models.MessageRoom
	err := chr.db.Unscoped().
		Preload("FirstUser", withDeletedUsers).
		Preload("SecondUser", withDeletedUsers).
		Preload("LeftBy").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("messages.created_at ASC")
		}).
		Preload("Messages.LeftBy").
		Preload("Messages.Sender", withDeletedUsers).
		Preload("Messages.Receiver", withDeletedUsers).
		First(&room, "message_rooms.id = ?", roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, []error{errs.ErrMessageRoomNotFound}
		}
		return nil, []error{err}
	}
	return &room, nil
}

// SaveMessage persists the message, stamps it hidden for the given users and
// bumps the room's updated_at, all in one transaction.
func (chr *ChatRepository) SaveMessage(message *models.Message, hiddenFor []uint) (*models.Message, []error) {
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}
		for _, userID := range hiddenFor {
			leave := models.MessageLeave{MessageID: message.ID, UserID: userID}
			if err := tx.Create(&leave).Error; err != nil {
				return err
			}
			message.LeftBy = append(message.LeftBy, leave)
		}
		if err := tx.Model(&models.MessageRoom{}).
			Where("id = ?", message.RoomID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		return nil, []error{transactionErr}
	}
	return message, nil
}

// ReopenRoomForUser clears the user's room-level leave marker. The version
// check guards against a concurrent leave on the same row; the caller reloads
// and retries on ErrRoomConflict.
func (chr *ChatRepository) ReopenRoomForUser(room *models.MessageRoom, userID uint) []error {
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("room_id = ? AND user_id = ?", room.ID, userID).
			Delete(&models.MessageRoomLeave{}).Error; err != nil {
			return err
		}
		return bumpRoomVersion(tx, room)
	})
	if transactionErr != nil {
		return []error{transactionErr}
	}
	return nil
}

// LeaveRoom stamps every message still visible to the user, purging any
// message both participants have now cleared, then records the room-level
// marker and soft-deletes the room once both participants have left. Message
// stamping runs before the room marker so a partial failure never reports the
// room as left.
func (chr *ChatRepository) LeaveRoom(room *models.MessageRoom, userID uint) []error {
	transactionErr := chr.db.Transaction(func(tx *gorm.DB) error {
		for i := range room.Messages {
			message := &room.Messages[i]
			if message.HiddenFor(userID) {
				continue
			}
			if err := tx.Create(&models.MessageLeave{
				MessageID: message.ID,
				UserID:    userID,
			}).Error; err != nil {
				return err
			}
			if len(message.LeftBy)+1 >= 2 {
				if err := tx.
					Where("message_id = ?", message.ID).
					Delete(&models.MessageLeave{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&models.Message{}, message.ID).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Create(&models.MessageRoomLeave{
			RoomID: room.ID,
			UserID: userID,
		}).Error; err != nil {
			return err
		}

		if err := bumpRoomVersion(tx, room); err != nil {
			return err
		}

		if len(room.LeftBy)+1 >= 2 {
			if err := tx.Delete(&models.MessageRoom{}, room.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if transactionErr != nil {
		return []error{transactionErr}
	}
	return nil
}

func bumpRoomVersion(tx *gorm.DB, room *models.MessageRoom) error {
	result := tx.Model(&models.MessageRoom{}).
		Where("id = ? AND version = ?", room.ID, room.Version).
		Update("version", gorm.Expr("version + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrRoomConflict
	}
	room.Version++
	return nil
}

// GetUserRooms lists the rooms where the user is a participant, is not
// soft-deleted and has not left, newest activity first. Each room's message
// list excludes messages the user has individually cleared.
func (chr *ChatRepository) GetUserRooms(userID uint) ([]models.MessageRoom, []error) {
	var rooms []models.MessageRoom
	err := chr.db.
		Preload("FirstUser", withDeletedUsers).
		Preload("SecondUser", withDeletedUsers).
		Preload("LeftBy").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.
				Where("messages.id NOT IN (SELECT message_id FROM message_leaves WHERE user_id = ?)", userID).
				Order("messages.created_at ASC")
		}).
		Preload("Messages.LeftBy").
		Preload("Messages.Sender", withDeletedUsers).
		Preload("Messages.Receiver", withDeletedUsers).
		Where("first_user_id = ? OR second_user_id = ?", userID, userID).
		Where("id NOT IN (SELECT room_id FROM message_room_leaves WHERE user_id = ?)", userID).
		Order("updated_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, []error{err}
	}
	return rooms, nil
}

// GetRoomLastMessage returns the newest message still visible to the user,
// or nil when the room has none.
func (chr *ChatRepository) GetRoomLastMessage(roomID, userID uint) (*models.Message, error) {
	var message models.Message
	err := chr.db.
		Where("room_id = ?", roomID).
		Where("id NOT IN (SELECT message_id FROM message_leaves WHERE user_id = ?)", userID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (chr *ChatRepository) GetRoomUnreadCount(roomID, userID uint) (int, error) {
	var count int
	result := chr.db.Raw(
		"SELECT COUNT(*) FROM messages WHERE room_id = ? AND receiver_id = ? AND sender_id <> ? AND is_read = ? AND id NOT IN (SELECT message_id FROM message_leaves WHERE user_id = ?)",
		roomID, userID, userID, false, userID,
	).Scan(&count)
	if err := result.Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkMessagesAsRead flips is_read on the user's unread incoming messages in
// the room. The guard on sender_id keeps an author from marking their own
// messages; zero affected rows is fine, the operation is idempotent.
func (chr *ChatRepository) MarkMessagesAsRead(roomID, userID uint) []error {
	result := chr.db.Model(&models.Message{}).
		Where("room_id = ? AND receiver_id = ? AND sender_id <> ? AND is_read = ?", roomID, userID, userID, false).
		Update("is_read", true)
	if err := result.Error; err != nil {
		log.Printf("Failed to mark messages as read in room %d: %v", roomID, err)
		return []error{errs.ErrMessageNotFound}
	}
	return nil
}
