package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	mockRepo "pulse/internal/mocks/repository"
	mockSvc "pulse/internal/mocks/service"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBroadcastService(t *testing.T) (
	*broadcastService,
	*mockSvc.MockEventPublisher,
	*mockRepo.MockConversationRepository,
) {
	publisher := mockSvc.NewMockEventPublisher(t)
	conversationRepo := mockRepo.NewMockConversationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc, ok := NewBroadcastService(logger, publisher, conversationRepo).(*broadcastService)
	require.True(t, ok)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	return svc, publisher, conversationRepo
}

func TestBroadcastService_CreateBroadcastRequest_Success(t *testing.T) {
	svc, publisher, _ := createTestBroadcastService(t)

	ctx := context.Background()
	author := usecase.Author{ID: "u0", Name: "Ann"}
	input := &usecase.CreateBroadcastInput{
		Title:     "Surgery",
		BloodType: "O+",
		Location:  &entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	}

	var published *service.BroadcastRequestEvent
	publisher.EXPECT().PublishBroadcastRequest(ctx, mock.Anything).
		Run(func(_ context.Context, event *service.BroadcastRequestEvent) {
			published = event
		}).
		Return(nil)

	request, err := svc.CreateBroadcastRequest(ctx, author, input)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(request.ID)
	require.NoError(t, parseErr)
	assert.Equal(t, "u0", request.AuthorID)
	assert.Equal(t, "Ann", request.AuthorName)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), request.CreatedAt)

	require.NotNil(t, published)
	assert.Equal(t, *request, published.BroadcastRequest)
}

func TestBroadcastService_CreateBroadcastRequest_PublishFailure(t *testing.T) {
	svc, publisher, _ := createTestBroadcastService(t)

	ctx := context.Background()

	publisher.EXPECT().PublishBroadcastRequest(ctx, mock.Anything).Return(errors.New("topic not found"))

	request, err := svc.CreateBroadcastRequest(ctx, usecase.Author{ID: "u0"}, &usecase.CreateBroadcastInput{BloodType: "Any"})

	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrEventPublishFailed)
}

func TestBroadcastService_SendChatMessage_Success(t *testing.T) {
	svc, publisher, conversationRepo := createTestBroadcastService(t)

	ctx := context.Background()

	conversationRepo.EXPECT().FindConversationByID(ctx, "c1").
		Return(&entity.Conversation{ID: "c1", Participants: []string{"u1", "u2"}}, nil)
	publisher.EXPECT().PublishChatMessage(ctx, mock.MatchedBy(func(event *service.ChatMessageEvent) bool {
		return event.ConversationID == "c1" && event.SenderID == "u1" && event.SenderName == "Bo" && event.Text == "Hi"
	})).Return(nil)

	message, err := svc.SendChatMessage(ctx, usecase.Author{ID: "u1", Name: "Bo"}, &usecase.SendChatMessageInput{ConversationID: "c1", Text: "Hi"})

	require.NoError(t, err)
	assert.NotEmpty(t, message.ID)
}

func TestBroadcastService_SendChatMessage_NotParticipant(t *testing.T) {
	svc, _, conversationRepo := createTestBroadcastService(t)

	ctx := context.Background()

	conversationRepo.EXPECT().FindConversationByID(ctx, "c1").
		Return(&entity.Conversation{ID: "c1", Participants: []string{"u1", "u2"}}, nil)

	_, err := svc.SendChatMessage(ctx, usecase.Author{ID: "intruder"}, &usecase.SendChatMessageInput{ConversationID: "c1", Text: "Hi"})

	assert.ErrorIs(t, err, domainerrors.ErrNotParticipant)
}

func TestBroadcastService_SendChatMessage_ConversationNotFound(t *testing.T) {
	svc, _, conversationRepo := createTestBroadcastService(t)

	ctx := context.Background()

	conversationRepo.EXPECT().FindConversationByID(ctx, "c404").Return(nil, repository.ErrConversationNotFound)

	_, err := svc.SendChatMessage(ctx, usecase.Author{ID: "u1"}, &usecase.SendChatMessageInput{ConversationID: "c404", Text: "Hi"})

	assert.ErrorIs(t, err, domainerrors.ErrConversationNotFound)
}
