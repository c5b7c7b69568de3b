package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
)

type broadcastService struct {
	logger           *slog.Logger
	publisher        service.EventPublisher
	conversationRepo repository.ConversationRepository
	now              func() time.Time
}

// NewBroadcastService creates a new broadcast service instance
func NewBroadcastService(
	logger *slog.Logger,
	publisher service.EventPublisher,
	conversationRepo repository.ConversationRepository,
) usecase.BroadcastUsecase {
	return &broadcastService{
		logger:           logger,
		publisher:        publisher,
		conversationRepo: conversationRepo,
		now:              time.Now,
	}
}

// CreateBroadcastRequest publishes a new broadcast request
func (s *broadcastService) CreateBroadcastRequest(ctx context.Context, author usecase.Author, input *usecase.CreateBroadcastInput) (*entity.BroadcastRequest, error) {
	request := &entity.BroadcastRequest{
		ID:         uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		BloodType:  input.BloodType,
		Title:      input.Title,
		Location:   input.Location,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.publisher.PublishBroadcastRequest(ctx, &service.BroadcastRequestEvent{BroadcastRequest: *request}); err != nil {
		s.logger.Error("Failed to publish broadcast request",
			slog.String("broadcast_request_id", request.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
	}

	return request, nil
}

// SendChatMessage publishes a new chat message
func (s *broadcastService) SendChatMessage(ctx context.Context, author usecase.Author, input *usecase.SendChatMessageInput) (*entity.ChatMessage, error) {
	conversation, err := s.conversationRepo.FindConversationByID(ctx, input.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	if !slices.Contains(conversation.Participants, author.ID) {
		return nil, domainerrors.ErrNotParticipant
	}

	message := &entity.ChatMessage{
		ID:             uuid.New().String(),
		ConversationID: input.ConversationID,
		SenderID:       author.ID,
		SenderName:     author.Name,
		Text:           input.Text,
	}

	if err := s.publisher.PublishChatMessage(ctx, &service.ChatMessageEvent{ChatMessage: *message}); err != nil {
		s.logger.Error("Failed to publish chat message",
			slog.String("message_id", message.ID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrEventPublishFailed, err.Error())
	}

	return message, nil
}
