package redis

import (
	"context"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"

	"github.com/redis/go-redis/v9"
)

// ConversationRepository keeps each conversation's participants in a list and
// reads user tokens from the candidate hashes.
type ConversationRepository struct {
	client             redis.UniversalClient
	hashPrefix         string
	conversationPrefix string
}

// NewConversationRepository creates a new Redis-backed conversation repository
func NewConversationRepository(client *redis.Client, cfg *config.Config) *ConversationRepository {
	redisCfg := cfg.Redis
	if redisCfg == nil {
		redisCfg = &config.RedisConfig{}
	}
	redisCfg.ApplyDefaults()

	return &ConversationRepository{
		client:             client,
		hashPrefix:         redisCfg.HashPrefix,
		conversationPrefix: redisCfg.ConversationPrefix,
	}
}

// FindConversationByID reads the participant list. An empty or missing list
// means the conversation does not exist.
func (r *ConversationRepository) FindConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	participants, err := r.client.LRange(ctx, r.conversationKey(id), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read conversation %s", id)
	}
	if len(participants) == 0 {
		return nil, repository.ErrConversationNotFound
	}

	return &entity.Conversation{ID: id, Participants: participants}, nil
}

// SaveConversation replaces the participant list of a conversation
func (r *ConversationRepository) SaveConversation(ctx context.Context, conversation *entity.Conversation) error {
	key := r.conversationKey(conversation.ID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(conversation.Participants) == 0 {
			return nil
		}

		members := make([]any, 0, len(conversation.Participants))
		for _, participant := range conversation.Participants {
			members = append(members, participant)
		}
		pipe.RPush(ctx, key, members...)

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save conversation %s", conversation.ID)
	}

	return nil
}

// FindUserToken reads the token field of the user's candidate hash
func (r *ConversationRepository) FindUserToken(ctx context.Context, userID string) (*entity.UserToken, error) {
	token, err := r.client.HGet(ctx, r.hashPrefix+userID, hashFieldFCMToken).Result()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read token of user %s", userID)
	}

	return &entity.UserToken{UserID: userID, FCMToken: token}, nil
}

func (r *ConversationRepository) conversationKey(id string) string {
	return r.conversationPrefix + id
}

var (
	_ repository.ConversationRepository = (*ConversationRepository)(nil)
	_ repository.UserTokenRepository    = (*ConversationRepository)(nil)
)
