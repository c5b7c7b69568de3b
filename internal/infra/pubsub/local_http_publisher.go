package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/service"

	"github.com/pkg/errors"
)

// Worker push routes the local publisher posts to
const (
	BroadcastPushPath = "/push/broadcast-requests"
	ChatPushPath      = "/push/chat-messages"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development.
// endpoint is the worker's base URL.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishBroadcastRequest posts a broadcast request to the worker
func (p *localHTTPPublisher) PublishBroadcastRequest(ctx context.Context, event *service.BroadcastRequestEvent) error {
	msg, err := newBroadcastMessage(ctx, event)
	if err != nil {
		return err
	}

	return p.push(ctx, BroadcastPushPath, "broadcast-request-sub", msg)
}

// PublishChatMessage posts a chat message to the worker
func (p *localHTTPPublisher) PublishChatMessage(ctx context.Context, event *service.ChatMessageEvent) error {
	msg, err := newChatMessage(ctx, event)
	if err != nil {
		return err
	}

	return p.push(ctx, ChatPushPath, "chat-message-sub", msg)
}

func (p *localHTTPPublisher) push(ctx context.Context, path, subscription string, msg *outboundMessage) error {
	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/" + subscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.Attributes = msg.attributes
	pushMsg.Message.MessageID = msg.id
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	url := p.endpoint + path
	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", url),
		slog.String("event_type", msg.attributes[AttributeEventType]),
		slog.String("event_id", msg.id),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID := msg.attributes[AttributeRequestID]; requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_id", msg.id),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
