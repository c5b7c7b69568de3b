package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRepository(t *testing.T) *CandidateRepository {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCandidateRepository(&config.Config{}, logger)
}

func TestCandidateRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := createTestRepository(t)

	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u1", FCMToken: "t1", Location: &entity.Coordinate{Latitude: 1, Longitude: 1}}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u2", FCMToken: "t2"}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u3", BloodType: "O+"}))

	candidates, err := repo.FindAllCandidates(ctx)
	require.NoError(t, err)

	require.Len(t, candidates, 3)
	assert.Equal(t, "u1", candidates[0].ID)
	assert.Equal(t, "u2", candidates[1].ID)
	assert.Nil(t, candidates[1].Location)
	assert.Equal(t, "u3", candidates[2].ID)
}

func TestCandidateRepository_FindCandidatesNear(t *testing.T) {
	ctx := context.Background()
	repo := createTestRepository(t)

	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "near", FCMToken: "t1", Location: &entity.Coordinate{Latitude: 40.7580, Longitude: -73.9855}}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "far", FCMToken: "t2", Location: &entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278}}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "nowhere", FCMToken: "t3"}))

	candidates, err := repo.FindCandidatesNear(ctx, entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 50)
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "near", candidates[0].ID)
	assert.Equal(t, "t1", candidates[0].FCMToken)
}

func TestCandidateRepository_ReplaceKeepsOrderAndMovesLocation(t *testing.T) {
	ctx := context.Background()
	repo := createTestRepository(t)

	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u1", Location: &entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u2"}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u1"}))

	all, err := repo.FindAllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "u1", all[0].ID)
	assert.Nil(t, all[0].Location)

	near, err := repo.FindCandidatesNear(ctx, entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 50)
	require.NoError(t, err)
	assert.Empty(t, near)
}

func TestCandidateRepository_RemoveCandidate(t *testing.T) {
	ctx := context.Background()
	repo := createTestRepository(t)

	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u1", Location: &entity.Coordinate{Latitude: 10, Longitude: 10}}))
	require.NoError(t, repo.IndexCandidate(ctx, &entity.Candidate{ID: "u2", Location: &entity.Coordinate{Latitude: 10, Longitude: 10}}))

	require.NoError(t, repo.RemoveCandidate(ctx, "u1"))
	require.NoError(t, repo.RemoveCandidate(ctx, "missing"))

	all, err := repo.FindAllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "u2", all[0].ID)

	near, err := repo.FindCandidatesNear(ctx, entity.Coordinate{Latitude: 10, Longitude: 10}, 1)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "u2", near[0].ID)
}

func TestCandidateRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := createTestRepository(t)

	original := &entity.Candidate{ID: "u1", FCMToken: "t1", Location: &entity.Coordinate{Latitude: 1, Longitude: 2}}
	require.NoError(t, repo.IndexCandidate(ctx, original))
	original.Location.Latitude = 50

	all, err := repo.FindAllCandidates(ctx)
	require.NoError(t, err)
	all[0].FCMToken = "changed"

	again, err := repo.FindAllCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", again[0].FCMToken)
	assert.InDelta(t, 1.0, again[0].Location.Latitude, 1e-9)
}

func TestCandidateRepository_IndexCandidateRequiresID(t *testing.T) {
	repo := createTestRepository(t)

	assert.Error(t, repo.IndexCandidate(context.Background(), &entity.Candidate{}))
	assert.Error(t, repo.IndexCandidate(context.Background(), nil))
}

func TestCandidateRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := createTestRepository(t)

	_, err := repo.FindAllCandidates(ctx)
	assert.ErrorIs(t, err, repository.ErrCandidateStoreUnavailable)

	_, err = repo.FindCandidatesNear(ctx, entity.Coordinate{}, 50)
	assert.ErrorIs(t, err, repository.ErrCandidateStoreUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConversationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()

	require.NoError(t, repo.SaveConversation(&entity.Conversation{ID: "c1", Participants: []string{"alice", "bob"}}))
	repo.SaveUserToken("bob", "bob-token")
	repo.SaveUserToken("carol", "")

	conversation, err := repo.FindConversationByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, conversation.Participants)

	_, err = repo.FindConversationByID(ctx, "c2")
	assert.ErrorIs(t, err, repository.ErrConversationNotFound)

	token, err := repo.FindUserToken(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob-token", token.FCMToken)

	token, err = repo.FindUserToken(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, token.FCMToken)

	_, err = repo.FindUserToken(ctx, "alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	assert.Error(t, repo.SaveConversation(&entity.Conversation{}))
}
