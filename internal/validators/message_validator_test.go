package validators

import (
	"errors"
	"testing"

	"privateChat/internal/errs"
	"privateChat/internal/models"
)

func TestValidateSendMessage(t *testing.T) {
	tests := []struct {
		name     string
		senderID uint
		body     *models.SendMessageRequestBody
		expected error
	}{
		{
			name:     "valid",
			senderID: 1,
			body:     &models.SendMessageRequestBody{ReceiverID: 2, Content: "hello"},
			expected: nil,
		},
		{
			name:     "nil body",
			senderID: 1,
			body:     nil,
			expected: errs.ErrInvalidRequestBody,
		},
		{
			name:     "empty content",
			senderID: 1,
			body:     &models.SendMessageRequestBody{ReceiverID: 2, Content: ""},
			expected: errs.ErrEmptyMessageContent,
		},
		{
			name:     "whitespace content",
			senderID: 1,
			body:     &models.SendMessageRequestBody{ReceiverID: 2, Content: " \n\t "},
			expected: errs.ErrEmptyMessageContent,
		},
		{
			name:     "self messaging",
			senderID: 1,
			body:     &models.SendMessageRequestBody{ReceiverID: 1, Content: "hello"},
			expected: errs.ErrSelfMessaging,
		},
		{
			name:     "zero receiver",
			senderID: 1,
			body:     &models.SendMessageRequestBody{ReceiverID: 0, Content: "hello"},
			expected: errs.ErrInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validationErrs := ValidateSendMessage(tt.senderID, tt.body)
			if tt.expected == nil {
				if len(validationErrs) != 0 {
					t.Errorf("expected no errors, got %v", validationErrs)
				}
				return
			}
			found := false
			for _, err := range validationErrs {
				if errors.Is(err, tt.expected) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v, got %v", tt.expected, validationErrs)
			}
		})
	}
}
