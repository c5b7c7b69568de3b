package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// ChatNotificationResult summarises the notifications sent for one chat message.
type ChatNotificationResult struct {
	MessageID string `json:"messageId"`
	Skipped   bool   `json:"skipped"` // System messages and missing conversations are skipped.
	Sent      int    `json:"sent"`
	Failed    int    `json:"failed"`
	NoToken   int    `json:"noToken"` // Participants without a registered token.
}

// ChatUsecase notifies conversation participants about a new message.
type ChatUsecase interface {
	// NotifyParticipants sends one push per participant other than the sender.
	// A failure for one participant does not stop the others.
	NotifyParticipants(ctx context.Context, message *entity.ChatMessage) (*ChatNotificationResult, error)
}
