// Package handler receives Pub/Sub push deliveries and runs the notifiers.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const attributeRequestID = "request_id"

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns created-record events into notification passes
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	proximityUC    usecase.ProximityUsecase
	chatUC         usecase.ChatUsecase
	verifyToken    func(req *http.Request) error
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	ProximityUC usecase.ProximityUsecase
	ChatUC      usecase.ChatUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		proximityUC:    params.ProximityUC,
		chatUC:         params.ChatUC,
		verifyToken:    verifyPubSubToken,
	}
}

// HandleBroadcastRequest runs one proximity pass for a created broadcast request.
// Every pass that starts is acked, whatever its outcome.
func (h *PushHandler) HandleBroadcastRequest(c echo.Context) error {
	var event service.BroadcastRequestEvent
	pushMsg, status := h.decodePush(c, &event)
	if pushMsg == nil {
		return c.NoContent(status)
	}

	ctx, reqLogger := h.scope(c.Request().Context(), pushMsg, event.RequestID)
	reqLogger = reqLogger.With(slog.String("broadcast_request_id", event.ID))

	if err := ctx.Err(); err != nil {
		return h.reject(c, reqLogger, newRetryableError(errors.WithStack(err)))
	}

	reqLogger.Info("[Worker] Processing broadcast request",
		slog.String("blood_type", event.BloodType),
		slog.Bool("has_location", event.HasLocation()),
	)

	result, err := h.proximityUC.Notify(ctx, &event.BroadcastRequest)
	if err != nil {
		// The pass already logged the failure and recorded it in the result.
		reqLogger.Warn("[Worker] Broadcast pass ended with failure",
			slog.String("outcome", string(result.Outcome)),
			slog.Any("error", err),
		)
	} else {
		reqLogger.Info("[Worker] Broadcast pass completed",
			slog.String("outcome", string(result.Outcome)),
			slog.Int("candidates", result.CandidateCount),
			slog.Int("eligible", result.EligibleCount),
			slog.Int("sent", result.SuccessCount),
			slog.Int("failed", result.FailureCount),
		)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleChatMessage notifies the other participants of a conversation.
func (h *PushHandler) HandleChatMessage(c echo.Context) error {
	var event service.ChatMessageEvent
	pushMsg, status := h.decodePush(c, &event)
	if pushMsg == nil {
		return c.NoContent(status)
	}

	ctx, reqLogger := h.scope(c.Request().Context(), pushMsg, event.RequestID)
	reqLogger = reqLogger.With(
		slog.String("conversation_id", event.ConversationID),
		slog.String("message_id", event.ID),
	)

	if err := ctx.Err(); err != nil {
		return h.reject(c, reqLogger, newRetryableError(errors.WithStack(err)))
	}

	result, err := h.chatUC.NotifyParticipants(ctx, &event.ChatMessage)
	if err != nil {
		reqLogger.Error("[Worker] Chat notification failed", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Chat notification completed",
		slog.Bool("skipped", result.Skipped),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("no_token", result.NoToken),
	)

	return c.JSON(http.StatusOK, result)
}

// decodePush verifies and unpacks a push delivery into event. On failure it
// returns a nil message and the status to answer with.
func (h *PushHandler) decodePush(c echo.Context, event any) (*PubSubMessage, int) {
	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return nil, http.StatusUnauthorized
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return nil, http.StatusBadRequest
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return nil, http.StatusBadRequest
	}

	if err := json.Unmarshal(data, event); err != nil {
		h.logger.Error("[Worker] Failed to parse event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return nil, http.StatusBadRequest
	}

	return &pushMsg, http.StatusOK
}

// scope attaches the request ID and a request-scoped logger to ctx.
func (h *PushHandler) scope(ctx context.Context, pushMsg *PubSubMessage, eventRequestID string) (context.Context, *slog.Logger) {
	requestID := extractRequestID(ctx, pushMsg, eventRequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// reject answers 503 for retryable errors so Pub/Sub redelivers, 200 otherwise.
func (h *PushHandler) reject(c echo.Context, logger *slog.Logger, err error) error {
	logger.Error("[Worker] Pass not started",
		slog.Any("error", err),
		slog.Bool("retryable", isRetryableError(err)),
	)
	if isRetryableError(err) {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, eventRequestID string) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes[attributeRequestID]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if eventRequestID != "" {
		return eventRequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
