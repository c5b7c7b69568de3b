package pubsub

import (
	"context"
	"encoding/json"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys set on every published event
const (
	AttributeEventType      = "event_type"
	AttributeRequestID      = "request_id"
	AttributeBroadcastID    = "broadcast_request_id"
	AttributeMessageID      = "message_id"
	AttributeConversationID = "conversation_id"
)

// outboundMessage is an event serialized for the transport
type outboundMessage struct {
	id         string
	data       []byte
	attributes map[string]string
}

// newBroadcastMessage serializes a broadcast request event. A missing
// request_id is taken from the context.
func newBroadcastMessage(ctx context.Context, event *service.BroadcastRequestEvent) (*outboundMessage, error) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttributeEventType:   constants.EventTypeBroadcastRequestCreated,
		AttributeBroadcastID: event.ID,
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return &outboundMessage{id: event.ID, data: data, attributes: attributes}, nil
}

// newChatMessage serializes a chat message event. A missing request_id is
// taken from the context.
func newChatMessage(ctx context.Context, event *service.ChatMessageEvent) (*outboundMessage, error) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttributeEventType:      constants.EventTypeChatMessageCreated,
		AttributeMessageID:      event.ID,
		AttributeConversationID: event.ConversationID,
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return &outboundMessage{id: event.ID, data: data, attributes: attributes}, nil
}
