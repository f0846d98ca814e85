package validators

import (
	"strings"

	"privateChat/internal/errs"
	"privateChat/internal/models"
)

func ValidateSendMessage(senderID uint, body *models.SendMessageRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}

	if strings.TrimSpace(body.Content) == "" {
		errors = append(errors, errs.ErrEmptyMessageContent)
	}

	if body.ReceiverID == 0 {
		errors = append(errors, errs.ErrInvalidParams)
	} else if body.ReceiverID == senderID {
		errors = append(errors, errs.ErrSelfMessaging)
	}

	return errors
}
