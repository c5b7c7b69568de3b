package impl

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"
)

type chatService struct {
	logger           *slog.Logger
	conversationRepo repository.ConversationRepository
	userTokenRepo    repository.UserTokenRepository
	pushSvc          service.PushService
	clickAction      string
}

// NewChatService creates a new chat notifier instance
func NewChatService(
	logger *slog.Logger,
	cfg *config.Config,
	conversationRepo repository.ConversationRepository,
	userTokenRepo repository.UserTokenRepository,
	pushSvc service.PushService,
) usecase.ChatUsecase {
	notifierCfg := cfg.Notifier
	if notifierCfg == nil {
		notifierCfg = &config.NotifierConfig{}
	}
	notifierCfg.ApplyDefaults()

	return &chatService{
		logger:           logger,
		conversationRepo: conversationRepo,
		userTokenRepo:    userTokenRepo,
		pushSvc:          pushSvc,
		clickAction:      notifierCfg.ClickAction,
	}
}

// NotifyParticipants sends the message to every participant except the sender
func (s *chatService) NotifyParticipants(ctx context.Context, message *entity.ChatMessage) (*usecase.ChatNotificationResult, error) {
	result := &usecase.ChatNotificationResult{MessageID: message.ID}
	logger := s.logger.With(
		slog.String("conversation_id", message.ConversationID),
		slog.String("message_id", message.ID),
	)

	if message.SenderID == constants.SystemSenderID {
		result.Skipped = true

		return result, nil
	}

	conversation, err := s.conversationRepo.FindConversationByID(ctx, message.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			logger.Warn("Conversation not found, skipping chat notification")
			result.Skipped = true

			return result, nil
		}

		return result, errors.Wrap(err, "failed to find conversation")
	}

	payload := newChatPayload(message, s.clickAction)

	for _, participantID := range conversation.Participants {
		if participantID == message.SenderID {
			continue
		}

		userToken, err := s.userTokenRepo.FindUserToken(ctx, participantID)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				logger.Warn("Failed to look up participant token",
					slog.String("user_id", participantID),
					slog.Any("error", err),
				)
				result.Failed++

				continue
			}
			result.NoToken++

			continue
		}

		if userToken.FCMToken == "" {
			result.NoToken++

			continue
		}

		if err := s.pushSvc.SendSingle(ctx, userToken.FCMToken, payload); err != nil {
			logger.Warn("Failed to send chat notification",
				slog.String("user_id", participantID),
				slog.Any("error", err),
			)
			result.Failed++

			continue
		}
		result.Sent++
	}

	logger.Info("Chat notifications sent",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
