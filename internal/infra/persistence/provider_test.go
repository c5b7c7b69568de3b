package persistence

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/infra/persistence/memory"
	mockRepo "pulse/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, storeCfg *config.CandidateStoreConfig) StoreParams {
	t.Helper()

	return StoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{CandidateStore: storeCfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewStores_DefaultsToMemory(t *testing.T) {
	stores, err := NewStores(newTestParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &memory.CandidateRepository{}, stores.Candidates)
	assert.IsType(t, &memory.ConversationRepository{}, stores.Conversations)
	assert.Same(t, stores.Conversations, stores.UserTokens)
}

func TestNewStores_SeedsMemoryStore(t *testing.T) {
	tmpDir := t.TempDir()
	seed := `id,bloodType,latitude,longitude,fcmToken
u1,O+,40.7128,-74.0060,token-1
u2,A-,,,
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "users.csv"), []byte(seed), 0644))

	stores, err := NewStores(newTestParams(t, &config.CandidateStoreConfig{
		Provider: "memory",
		SeedURL:  "file://" + filepath.ToSlash(tmpDir),
		SeedKey:  "users.csv",
	}))
	require.NoError(t, err)

	ctx := context.Background()
	all, err := stores.Candidates.FindAllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	near, err := stores.Candidates.FindCandidatesNear(ctx, entity.Coordinate{Latitude: 40.7128, Longitude: -74.0060}, 50)
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "u1", near[0].ID)

	token, err := stores.UserTokens.FindUserToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token.FCMToken)

	token, err = stores.UserTokens.FindUserToken(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, token.FCMToken)
}

func TestNewStores_SeedFailure(t *testing.T) {
	_, err := NewStores(newTestParams(t, &config.CandidateStoreConfig{
		Provider: "memory",
		SeedURL:  "file://" + filepath.ToSlash(t.TempDir()),
		SeedKey:  "missing.csv",
	}))

	assert.Error(t, err)
}

func TestNewStores_UnknownProvider(t *testing.T) {
	_, err := NewStores(newTestParams(t, &config.CandidateStoreConfig{Provider: "cassandra"}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown candidate store provider")
}

func TestNewStores_RedisRequiresAddress(t *testing.T) {
	_, err := NewStores(newTestParams(t, &config.CandidateStoreConfig{Provider: "redis"}))

	assert.Error(t, err)
}

func TestSeedMemoryStores_IndexerFailure(t *testing.T) {
	tmpDir := t.TempDir()
	seed := "id,bloodType,latitude,longitude,fcmToken\nu1,O+,1,1,token-1\nu2,A-,2,2,token-2\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "users.csv"), []byte(seed), 0644))

	indexer := mockRepo.NewMockCandidateIndexer(t)
	indexer.EXPECT().IndexCandidate(mock.Anything, mock.MatchedBy(func(c *entity.Candidate) bool {
		return c.ID == "u1"
	})).Return(errors.New("index down")).Once()

	conversations := memory.NewConversationRepository()
	err := seedMemoryStores(context.Background(), &config.CandidateStoreConfig{
		SeedURL: "file://" + filepath.ToSlash(tmpDir),
		SeedKey: "users.csv",
	}, indexer, conversations)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed candidate u1")

	_, lookupErr := conversations.FindUserToken(context.Background(), "u1")
	assert.Error(t, lookupErr)
}

func TestSeedMemoryStores_NoSeedConfigured(t *testing.T) {
	indexer := mockRepo.NewMockCandidateIndexer(t)

	assert.NoError(t, seedMemoryStores(context.Background(), &config.CandidateStoreConfig{}, indexer, memory.NewConversationRepository()))
	assert.NoError(t, seedMemoryStores(context.Background(), nil, indexer, memory.NewConversationRepository()))
}
