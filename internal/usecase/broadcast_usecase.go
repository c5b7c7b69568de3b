package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// Author identifies the authenticated user creating a record.
type Author struct {
	ID   string
	Name string
}

// CreateBroadcastInput is the user-supplied part of a broadcast request.
type CreateBroadcastInput struct {
	Title     string
	BloodType string
	Location  *entity.Coordinate
}

// SendChatMessageInput is the user-supplied part of a chat message.
type SendChatMessageInput struct {
	ConversationID string
	Text           string
}

// BroadcastUsecase accepts new records from the API and hands them to the event source.
type BroadcastUsecase interface {
	// CreateBroadcastRequest assigns an ID and publishes the created-record event.
	CreateBroadcastRequest(ctx context.Context, author Author, input *CreateBroadcastInput) (*entity.BroadcastRequest, error)

	// SendChatMessage checks that the author takes part in the conversation and
	// publishes the created-record event.
	SendChatMessage(ctx context.Context, author Author, input *SendChatMessageInput) (*entity.ChatMessage, error)
}
