package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for chat lookups.
var (
	// ErrConversationNotFound is returned when a conversation does not exist.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// ConversationRepository reads chat conversations.
type ConversationRepository interface {
	// FindConversationByID returns the conversation with its participant IDs.
	FindConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
}

// UserTokenRepository resolves push tokens for individual users.
type UserTokenRepository interface {
	// FindUserToken returns the user's token record. The token may be empty.
	FindUserToken(ctx context.Context, userID string) (*entity.UserToken, error)
}
