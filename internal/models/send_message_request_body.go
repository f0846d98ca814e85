package models

type SendMessageRequestBody struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}
