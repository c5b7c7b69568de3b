package service

import (
	"context"

	"pulse/internal/domain/entity"
)

// BroadcastRequestEvent is the created-record event for a broadcast request.
type BroadcastRequestEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	entity.BroadcastRequest
}

// ChatMessageEvent is the created-record event for a chat message.
type ChatMessageEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	entity.ChatMessage
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastRequest publishes a broadcast request for proximity fan-out.
	PublishBroadcastRequest(ctx context.Context, event *BroadcastRequestEvent) error

	// PublishChatMessage publishes a chat message for participant notification.
	PublishChatMessage(ctx context.Context, event *ChatMessageEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
