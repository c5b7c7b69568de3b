package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatService(t *testing.T) (
	usecase.ChatUsecase,
	*mockRepo.MockConversationRepository,
	*mockRepo.MockUserTokenRepository,
	*mockSvc.MockPushService,
) {
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	userTokenRepo := mockRepo.NewMockUserTokenRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewChatService(logger, &config.Config{}, conversationRepo, userTokenRepo, pushSvc)

	return service, conversationRepo, userTokenRepo, pushSvc
}

func TestChatService_NotifyParticipants_Success(t *testing.T) {
	service, conversationRepo, userTokenRepo, pushSvc := createTestChatService(t)

	ctx := context.Background()
	message := &entity.ChatMessage{ID: "m1", ConversationID: "c1", SenderID: "u1", SenderName: "Bo", Text: "Hi"}

	conversationRepo.EXPECT().FindConversationByID(ctx, "c1").
		Return(&entity.Conversation{ID: "c1", Participants: []string{"u1", "u2", "u3"}}, nil)
	userTokenRepo.EXPECT().FindUserToken(ctx, "u2").Return(&entity.UserToken{UserID: "u2", FCMToken: "tok2"}, nil)
	userTokenRepo.EXPECT().FindUserToken(ctx, "u3").Return(&entity.UserToken{UserID: "u3", FCMToken: "tok3"}, nil)

	matchesChat := mock.MatchedBy(func(payload *entity.NotificationPayload) bool {
		return payload.Title == "New message from Bo" &&
			payload.Body == "Hi" &&
			payload.Data["type"] == "chat" &&
			payload.Data["conversationId"] == "c1" &&
			payload.Data["senderId"] == "u1"
	})
	pushSvc.EXPECT().SendSingle(ctx, "tok2", matchesChat).Return(nil)
	pushSvc.EXPECT().SendSingle(ctx, "tok3", matchesChat).Return(nil)

	result, err := service.NotifyParticipants(ctx, message)

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Sent)
	assert.Zero(t, result.Failed)
}

func TestChatService_NotifyParticipants_SkipsSystemMessages(t *testing.T) {
	service, _, _, _ := createTestChatService(t)

	result, err := service.NotifyParticipants(context.Background(), &entity.ChatMessage{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "system",
		Text:           "Request fulfilled",
	})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestChatService_NotifyParticipants_ConversationNotFound(t *testing.T) {
	service, conversationRepo, _, _ := createTestChatService(t)

	ctx := context.Background()

	conversationRepo.EXPECT().FindConversationByID(ctx, "missing").Return(nil, repository.ErrConversationNotFound)

	result, err := service.NotifyParticipants(ctx, &entity.ChatMessage{ConversationID: "missing", SenderID: "u1"})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestChatService_NotifyParticipants_ConversationLookupError(t *testing.T) {
	service, conversationRepo, _, _ := createTestChatService(t)

	ctx := context.Background()

	conversationRepo.EXPECT().FindConversationByID(ctx, "c1").Return(nil, errors.New("unavailable"))

	_, err := service.NotifyParticipants(ctx, &entity.ChatMessage{ConversationID: "c1", SenderID: "u1"})

	require.Error(t, err)
}

func TestChatService_NotifyParticipants_ContinuesAfterFailures(t *testing.T) {
	service, conversationRepo, userTokenRepo, pushSvc := createTestChatService(t)

	ctx := context.Background()
	message := &entity.ChatMessage{ID: "m1", ConversationID: "c1", SenderID: "u1", Text: "Hi"}

	conversationRepo.EXPECT().FindConversationByID(ctx, "c1").
		Return(&entity.Conversation{ID: "c1", Participants: []string{"u1", "gone", "silent", "broken", "flaky", "ok"}}, nil)
	userTokenRepo.EXPECT().FindUserToken(ctx, "gone").Return(nil, repository.ErrUserNotFound)
	userTokenRepo.EXPECT().FindUserToken(ctx, "silent").Return(&entity.UserToken{UserID: "silent"}, nil)
	userTokenRepo.EXPECT().FindUserToken(ctx, "broken").Return(nil, errors.New("timeout"))
	userTokenRepo.EXPECT().FindUserToken(ctx, "flaky").Return(&entity.UserToken{UserID: "flaky", FCMToken: "tokF"}, nil)
	userTokenRepo.EXPECT().FindUserToken(ctx, "ok").Return(&entity.UserToken{UserID: "ok", FCMToken: "tokOK"}, nil)

	pushSvc.EXPECT().SendSingle(ctx, "tokF", mock.Anything).Return(errors.New("unregistered"))
	pushSvc.EXPECT().SendSingle(ctx, "tokOK", mock.Anything).Return(nil)

	result, err := service.NotifyParticipants(ctx, message)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 2, result.NoToken)
}
