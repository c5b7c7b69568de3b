package postgres

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// conversationRepository implements repository.ConversationRepository.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// FindConversationByID retrieves a conversation with its participants in join order.
func (repo *conversationRepository) FindConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at, user_id")
		}).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by id")
	}

	return toConversationDomain(&conversationM), nil
}

// userTokenRepository implements repository.UserTokenRepository.
type userTokenRepository struct {
	db *gorm.DB
}

// NewUserTokenRepository is the constructor for userTokenRepository.
func NewUserTokenRepository(db *gorm.DB) repository.UserTokenRepository {
	return &userTokenRepository{
		db: db,
	}
}

// FindUserToken reads the donor's registered FCM token.
func (repo *userTokenRepository) FindUserToken(ctx context.Context, userID string) (*entity.UserToken, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Select("id", "fcm_token").
		Where("id = ?", userID).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user token")
	}

	token := &entity.UserToken{UserID: donorM.ID}
	if donorM.FCMToken != nil {
		token.FCMToken = *donorM.FCMToken
	}

	return token, nil
}

// toConversationDomain converts a GORM ConversationModel to a domain Conversation entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	participants := make([]string, 0, len(data.Participants))
	for _, participant := range data.Participants {
		participants = append(participants, participant.UserID)
	}

	return &entity.Conversation{
		ID:           data.ID,
		Participants: participants,
	}
}
