package firestore

import (
	"context"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"

	firestoreLib "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type conversationRepository struct {
	client        *firestoreLib.Client
	conversations string
	users         string
}

// NewConversationRepository creates a new Firestore-backed conversation repository
func NewConversationRepository(client *firestoreLib.Client, cfg *config.Config) repository.ConversationRepository {
	return newConversationRepository(client, cfg)
}

// NewUserTokenRepository creates a new Firestore-backed user token repository
func NewUserTokenRepository(client *firestoreLib.Client, cfg *config.Config) repository.UserTokenRepository {
	return newConversationRepository(client, cfg)
}

func newConversationRepository(client *firestoreLib.Client, cfg *config.Config) *conversationRepository {
	return &conversationRepository{
		client:        client,
		conversations: cfg.CandidateStore.ConversationsCollection,
		users:         cfg.CandidateStore.UsersCollection,
	}
}

// FindConversationByID reads a conversation document
func (r *conversationRepository) FindConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection(r.conversations).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrapf(err, "failed to read conversation %s", id)
	}

	return toConversationDomain(doc.Ref.ID, doc.Data()), nil
}

// FindUserToken reads the token stored on a user profile document
func (r *conversationRepository) FindUserToken(ctx context.Context, userID string) (*entity.UserToken, error) {
	doc, err := r.client.Collection(r.users).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to read user %s", userID)
	}

	return &entity.UserToken{UserID: doc.Ref.ID, FCMToken: stringField(doc.Data(), fieldFCMToken)}, nil
}
