package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	mockUsecase "pulse/internal/mocks/usecase"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockProximityUsecase, *mockUsecase.MockChatUsecase) {
	proximityUC := mockUsecase.NewMockProximityUsecase(t)
	chatUC := mockUsecase.NewMockChatUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ProximityUC: proximityUC,
		ChatUC:      chatUC,
	})

	return h, proximityUC, chatUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/broadcast-requests"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushContext(ctx context.Context, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push/broadcast-requests", strings.NewReader(body)).WithContext(ctx)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandleBroadcastRequest(t *testing.T) {
	request := entity.BroadcastRequest{
		ID:        "req-1",
		AuthorID:  "u0",
		BloodType: "A+",
		Title:     "Need A+",
		Location:  &entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}

	t.Run("runs one pass and acks", func(t *testing.T) {
		h, proximityUC, _ := createTestPushHandler(t)
		body := pushBody(t, service.BroadcastRequestEvent{BroadcastRequest: request}, map[string]string{"request_id": "trace-1"})

		proximityUC.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(r *entity.BroadcastRequest) bool {
				return r.ID == "req-1" && r.Location != nil && r.Location.Latitude == 40.7128
			})).
			RunAndReturn(func(ctx context.Context, r *entity.BroadcastRequest) (*entity.PassResult, error) {
				assert.Equal(t, "trace-1", deliverycontext.GetRequestIDFromContext(ctx))

				return &entity.PassResult{RequestID: r.ID, Outcome: entity.PassOutcomeDelivered, EligibleCount: 2, SuccessCount: 2}, nil
			}).
			Once()

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var result entity.PassResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, entity.PassOutcomeDelivered, result.Outcome)
		assert.Equal(t, 2, result.SuccessCount)
	})

	t.Run("acks a pass that ended with a retrieval failure", func(t *testing.T) {
		h, proximityUC, _ := createTestPushHandler(t)
		body := pushBody(t, service.BroadcastRequestEvent{BroadcastRequest: request}, nil)

		proximityUC.EXPECT().
			Notify(mock.Anything, mock.Anything).
			Return(
				&entity.PassResult{RequestID: "req-1", Outcome: entity.PassOutcomeRetrievalFailed},
				errors.Wrap(domainerrors.ErrRetrievalFailure, "find candidates near request"),
			).
			Once()

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects undecodable data without running a pass", func(t *testing.T) {
		h, _, _ := createTestPushHandler(t)
		body := `{"message":{"data":"not base64!","messageId":"m-1"}}`

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects data that is not an event", func(t *testing.T) {
		h, _, _ := createTestPushHandler(t)
		body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("asks for redelivery when the context is already done", func(t *testing.T) {
		h, _, _ := createTestPushHandler(t)
		body := pushBody(t, service.BroadcastRequestEvent{BroadcastRequest: request}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c, rec := newPushContext(ctx, body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("rejects unauthenticated pushes when verification is on", func(t *testing.T) {
		h, _, _ := createTestPushHandler(t)
		h.verifyPushAuth = true
		h.verifyToken = func(*http.Request) error { return errors.New("missing authorization header") }
		body := pushBody(t, service.BroadcastRequestEvent{BroadcastRequest: request}, nil)

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleBroadcastRequest(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPushHandler_HandleChatMessage(t *testing.T) {
	message := entity.ChatMessage{
		ID:             "msg-1",
		ConversationID: "conv-1",
		SenderID:       "u1",
		SenderName:     "Ann",
		Text:           "hello",
	}

	t.Run("notifies participants", func(t *testing.T) {
		h, _, chatUC := createTestPushHandler(t)
		body := pushBody(t, service.ChatMessageEvent{ChatMessage: message}, nil)

		chatUC.EXPECT().
			NotifyParticipants(mock.Anything, &message).
			Return(&usecase.ChatNotificationResult{MessageID: "msg-1", Sent: 1}, nil).
			Once()

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleChatMessage(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var result usecase.ChatNotificationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 1, result.Sent)
	})

	t.Run("acks when the conversation cannot be loaded", func(t *testing.T) {
		h, _, chatUC := createTestPushHandler(t)
		body := pushBody(t, service.ChatMessageEvent{ChatMessage: message}, nil)

		chatUC.EXPECT().
			NotifyParticipants(mock.Anything, mock.Anything).
			Return(&usecase.ChatNotificationResult{MessageID: "msg-1"}, errors.New("store unavailable")).
			Once()

		c, rec := newPushContext(context.Background(), body)
		require.NoError(t, h.HandleChatMessage(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestExtractRequestID(t *testing.T) {
	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

	assert.Equal(t, "from-attr", extractRequestID(context.Background(), &msg, "from-event"))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", extractRequestID(context.Background(), &msg, "from-event"))

	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")
	assert.Equal(t, "from-ctx", extractRequestID(ctx, &msg, ""))

	assert.NotEmpty(t, extractRequestID(context.Background(), &msg, ""))
}
