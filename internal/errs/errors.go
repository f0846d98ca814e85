package errs

import (
	"errors"
	"net/http"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrUserAlreadyExists  = Error("user already exists")
	ErrUserNotFound       = Error("user not found")
	ErrWrongPassword      = Error("wrong password")
	ErrInvalidToken       = Error("invalid token")
	ErrInvalidEmail       = Error("invalid email")
	ErrInvalidPassword    = Error("invalid password")
	ErrInvalidUser        = Error("invalid user")
	ErrInvalidParams      = Error("invalid params")
	ErrFirstName          = Error("first name is empty or too short")
	ErrLastName           = Error("last name is empty or too short")
	ErrUnauthorized       = Error("unauthorized")
	ErrInvalidPageOrSize  = Error("invalid page or size")

	ErrEmptyMessageContent = Error("message content is empty")
	ErrSelfMessaging       = Error("cannot send a message to yourself")
	ErrReceiverBlocked     = Error("you have blocked this user")
	ErrSelfBlocking        = Error("cannot block yourself")
	ErrAlreadyBlocked      = Error("user already blocked")
	ErrBlockNotFound       = Error("block not found")
	ErrMessageRoomNotFound = Error("message room not found")
	ErrMessageNotFound     = Error("message not found")
	ErrNotAParticipant     = Error("not a participant of this room")
	ErrAlreadyLeftRoom     = Error("already left this room")
	ErrRoomClosed          = Error("message room is closed")
	ErrRoomConflict        = Error("message room was modified concurrently")
)

// HttpStatus maps a typed error onto the response taxonomy: bad request,
// not found, forbidden, unauthorized. Anything untyped is a bad request.
func HttpStatus(err error) int {
	switch {
	case errors.Is(err, ErrMessageRoomNotFound),
		errors.Is(err, ErrMessageNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrReceiverBlocked):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// HttpStatusOf picks the status for a handler response from the first error.
func HttpStatusOf(errors []error) int {
	if len(errors) == 0 {
		return http.StatusBadRequest
	}
	return HttpStatus(errors[0])
}
