package impl

import (
	"fmt"

	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
)

const (
	broadcastTitle      = "Urgent Blood Request Nearby"
	chatTitleFormat     = "New message from %s"
	unknownSenderName   = "Unknown"
	defaultChatBodyText = "New message"
)

// newBroadcastPayload builds the push sent to every recipient of a proximity pass.
func newBroadcastPayload(request *entity.BroadcastRequest, clickAction string) *entity.NotificationPayload {
	return &entity.NotificationPayload{
		Title: broadcastTitle,
		Body:  fmt.Sprintf("%s needs %s blood: %s", request.AuthorName, request.BloodType, request.Title),
		Data: map[string]string{
			entity.PayloadKeyType:        constants.NotificationTypeBloodRequest,
			entity.PayloadKeyRequestID:   request.ID,
			entity.PayloadKeyClickAction: clickAction,
		},
	}
}

// newChatPayload builds the push sent to one chat participant.
func newChatPayload(message *entity.ChatMessage, clickAction string) *entity.NotificationPayload {
	senderName := message.SenderName
	if senderName == "" {
		senderName = unknownSenderName
	}

	body := message.Text
	if body == "" {
		body = defaultChatBodyText
	}

	return &entity.NotificationPayload{
		Title: fmt.Sprintf(chatTitleFormat, senderName),
		Body:  body,
		Data: map[string]string{
			entity.PayloadKeyType:           constants.NotificationTypeChat,
			entity.PayloadKeySenderID:       message.SenderID,
			entity.PayloadKeyConversationID: message.ConversationID,
			entity.PayloadKeyClickAction:    clickAction,
		},
	}
}
