package memory

import (
	"context"
	"slices"
	"sync"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
)

// ConversationRepository keeps conversations and user tokens in memory
type ConversationRepository struct {
	mu            sync.RWMutex
	conversations map[string]*entity.Conversation
	tokens        map[string]string
}

// NewConversationRepository creates an empty in-memory conversation repository
func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		conversations: make(map[string]*entity.Conversation),
		tokens:        make(map[string]string),
	}
}

// SaveConversation inserts or replaces a conversation
func (r *ConversationRepository) SaveConversation(conversation *entity.Conversation) error {
	if conversation == nil || conversation.ID == "" {
		return errors.New("conversation id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations[conversation.ID] = &entity.Conversation{
		ID:           conversation.ID,
		Participants: slices.Clone(conversation.Participants),
	}

	return nil
}

// SaveUserToken registers the token of a user. An empty token keeps the user
// known without a delivery target.
func (r *ConversationRepository) SaveUserToken(userID, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[userID] = token
}

// FindConversationByID returns a copy of the stored conversation
func (r *ConversationRepository) FindConversationByID(_ context.Context, id string) (*entity.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrConversationNotFound, "conversation %s", id)
	}

	return &entity.Conversation{
		ID:           conversation.ID,
		Participants: slices.Clone(conversation.Participants),
	}, nil
}

// FindUserToken returns the registered token of a user
func (r *ConversationRepository) FindUserToken(_ context.Context, userID string) (*entity.UserToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[userID]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUserNotFound, "user %s", userID)
	}

	return &entity.UserToken{UserID: userID, FCMToken: token}, nil
}

var (
	_ repository.ConversationRepository = (*ConversationRepository)(nil)
	_ repository.UserTokenRepository    = (*ConversationRepository)(nil)
)
