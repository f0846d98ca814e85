package services

import (
	"errors"
	"strings"

	"privateChat/internal/errs"
	"privateChat/internal/models"
	"privateChat/internal/repositories"
	"privateChat/internal/validators"
)

type ChatService struct {
	chatRepo    *repositories.ChatRepository
	userService *UserService
}

func NewChatService(chatRepo *repositories.ChatRepository, userService *UserService) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		userService: userService,
	}
}

// SendMessage persists a message from sender to the receiver named in the
// body and returns the refreshed room. Sending to a user the sender has
// blocked is refused; the reverse direction is not: a sender blocked by the
// receiver gets no error, the message is just stamped invisible to the
// receiver from creation so the block never leaks to the blocked party.
func (cs *ChatService) SendMessage(senderID uint, body *models.SendMessageRequestBody) (*models.RoomResponse, []error) {
	if validationErrs := validators.ValidateSendMessage(senderID, body); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	sender, err := cs.userService.ResolveUser(senderID)
	if err != nil {
		return nil, []error{err}
	}
	if sender.HasBlocked(body.ReceiverID) {
		return nil, []error{errs.ErrReceiverBlocked}
	}

	receiver, err := cs.userService.ResolveUser(body.ReceiverID)
	if err != nil {
		return nil, []error{err}
	}

	room, roomErrs := cs.chatRepo.FindOrCreateRoom(senderID, body.ReceiverID)
	if len(roomErrs) > 0 {
		return nil, roomErrs
	}

	message := &models.Message{
		RoomID:     room.ID,
		SenderID:   senderID,
		ReceiverID: body.ReceiverID,
		Content:    strings.TrimSpace(body.Content),
	}
	var hiddenFor []uint
	if receiver.HasBlocked(senderID) {
		hiddenFor = append(hiddenFor, body.ReceiverID)
	}
	if _, saveErrs := cs.chatRepo.SaveMessage(message, hiddenFor); len(saveErrs) > 0 {
		return nil, saveErrs
	}

	// A new message reopens the conversation for a participant who had left:
	// the receiver is pulled back in, and a departed sender rejoins by
	// sending. Message-level markers stay untouched, so history a user
	// cleared before leaving remains hidden after the reopen.
	for _, participantID := range []uint{senderID, body.ReceiverID} {
		if room.HasLeft(participantID) {
			if reopenErrs := cs.reopenWithRetry(room, participantID); len(reopenErrs) > 0 {
				return nil, reopenErrs
			}
		}
	}

	// The sender is looking at the room right now; their incoming unread
	// messages count as read.
	if readErrs := cs.chatRepo.MarkMessagesAsRead(room.ID, senderID); len(readErrs) > 0 {
		return nil, readErrs
	}

	return cs.buildRoomResponse(room.ID, senderID, sender)
}

// reopenWithRetry clears the user's leave marker, reloading the room once if
// a concurrent leave bumped the row version in between.
func (cs *ChatService) reopenWithRetry(room *models.MessageRoom, userID uint) []error {
	reopenErrs := cs.chatRepo.ReopenRoomForUser(room, userID)
	if len(reopenErrs) == 0 || !errors.Is(reopenErrs[0], errs.ErrRoomConflict) {
		return reopenErrs
	}

	fresh, loadErrs := cs.chatRepo.GetRoomByID(room.ID)
	if len(loadErrs) > 0 {
		return loadErrs
	}
	if !fresh.HasLeft(userID) {
		return nil
	}
	return cs.chatRepo.ReopenRoomForUser(fresh, userID)
}

// GetRoom loads a room for one of its participants, flags whether the
// requester has blocked the other side and marks the requester's incoming
// messages read.
func (cs *ChatService) GetRoom(roomID, requesterID uint) (*models.RoomResponse, []error) {
	room, gateErrs := cs.loadRoomForUser(roomID, requesterID)
	if len(gateErrs) > 0 {
		return nil, gateErrs
	}

	requester, err := cs.userService.ResolveUser(requesterID)
	if err != nil {
		return nil, []error{err}
	}

	if readErrs := cs.chatRepo.MarkMessagesAsRead(room.ID, requesterID); len(readErrs) > 0 {
		return nil, readErrs
	}

	return cs.buildRoomResponse(roomID, requesterID, requester)
}

// loadRoomForUser applies the access rules shared by GetRoom and LeaveRoom:
// the room must exist, must not be closed, and the requester must be a
// participant who has not already left.
func (cs *ChatService) loadRoomForUser(roomID, userID uint) (*models.MessageRoom, []error) {
	room, loadErrs := cs.chatRepo.GetRoomByID(roomID)
	if len(loadErrs) > 0 {
		return nil, loadErrs
	}
	if room.DeletedAt.Valid {
		return nil, []error{errs.ErrRoomClosed}
	}
	if !room.HasParticipant(userID) {
		return nil, []error{errs.ErrNotAParticipant}
	}
	if room.HasLeft(userID) {
		return nil, []error{errs.ErrAlreadyLeftRoom}
	}
	return room, nil
}

func (cs *ChatService) buildRoomResponse(roomID, requesterID uint, requester *models.ResolvedUser) (*models.RoomResponse, []error) {
	room, loadErrs := cs.chatRepo.GetRoomByID(roomID)
	if len(loadErrs) > 0 {
		return nil, loadErrs
	}

	lastMessage, err := cs.chatRepo.GetRoomLastMessage(room.ID, requesterID)
	if err != nil {
		return nil, []error{err}
	}
	unread, err := cs.chatRepo.GetRoomUnreadCount(room.ID, requesterID)
	if err != nil {
		return nil, []error{err}
	}

	isBlocked := requester.HasBlocked(room.OtherParticipant(requesterID))
	response := room.ToRoomResponse(requesterID, lastMessage, unread, isBlocked)
	return &response, nil
}

// GetRooms lists the requester's open rooms, newest activity first, each
// annotated with the last visible message and the unread count.
func (cs *ChatService) GetRooms(userID uint) (*models.RoomListResponse, []error) {
	requester, err := cs.userService.ResolveUser(userID)
	if err != nil {
		return nil, []error{err}
	}

	rooms, roomErrs := cs.chatRepo.GetUserRooms(userID)
	if len(roomErrs) > 0 {
		return nil, roomErrs
	}

	responses := []models.RoomResponse{}
	for i := range rooms {
		room := &rooms[i]
		lastMessage, err := cs.chatRepo.GetRoomLastMessage(room.ID, userID)
		if err != nil {
			return nil, []error{err}
		}
		unread, err := cs.chatRepo.GetRoomUnreadCount(room.ID, userID)
		if err != nil {
			return nil, []error{err}
		}
		isBlocked := requester.HasBlocked(room.OtherParticipant(userID))
		responses = append(responses, room.ToRoomResponse(userID, lastMessage, unread, isBlocked))
	}

	return &models.RoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}, nil
}

// LeaveRoom hides the room and its messages for the user. Once both
// participants have left, the messages are gone for good and the room is
// closed.
func (cs *ChatService) LeaveRoom(userID, roomID uint) []error {
	room, gateErrs := cs.loadRoomForUser(roomID, userID)
	if len(gateErrs) > 0 {
		return gateErrs
	}

	leaveErrs := cs.chatRepo.LeaveRoom(room, userID)
	if len(leaveErrs) > 0 && errors.Is(leaveErrs[0], errs.ErrRoomConflict) {
		// A concurrent send reopened or touched the room; reload and try once
		// more against the fresh version.
		fresh, loadErrs := cs.loadRoomForUser(roomID, userID)
		if len(loadErrs) > 0 {
			return loadErrs
		}
		return cs.chatRepo.LeaveRoom(fresh, userID)
	}
	return leaveErrs
}

// MarkMessagesAsRead flips the user's unread incoming messages in the room.
// Calling it twice is the same as calling it once.
func (cs *ChatService) MarkMessagesAsRead(roomID, userID uint) []error {
	return cs.chatRepo.MarkMessagesAsRead(roomID, userID)
}
