// Package persistence selects the candidate and conversation stores from configuration.
package persistence

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	firebaseinfra "pulse/internal/infra/firebase"
	"pulse/internal/infra/persistence/firestore"
	"pulse/internal/infra/persistence/memory"
	"pulse/internal/infra/persistence/postgres"
	redisstore "pulse/internal/infra/persistence/redis"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the stores, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Shared with the messaging client when the binary provides one
	App *firebase.App `optional:"true"`
}

// Stores are the repositories the use cases read from
type Stores struct {
	fx.Out

	Candidates    repository.CandidateRepository
	Conversations repository.ConversationRepository
	UserTokens    repository.UserTokenRepository
}

// NewStores builds the repositories of the configured candidate store provider
func NewStores(params StoreParams) (Stores, error) {
	cfg := params.Config.CandidateStore
	logger := params.Logger

	provider := constants.CandidateStoreMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	logger.Info("Using candidate store", slog.String("provider", provider))

	switch provider {
	case constants.CandidateStoreFirestore:
		return newFirestoreStores(params)

	case constants.CandidateStorePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Stores{}, err
		}

		return Stores{
			Candidates:    postgres.NewCandidateRepository(db, logger),
			Conversations: postgres.NewConversationRepository(db),
			UserTokens:    postgres.NewUserTokenRepository(db),
		}, nil

	case constants.CandidateStoreRedis:
		client, err := redisstore.New(redisstore.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return Stores{}, err
		}

		conversations := redisstore.NewConversationRepository(client, params.Config)

		return Stores{
			Candidates:    redisstore.NewCandidateRepository(client, params.Config, logger),
			Conversations: conversations,
			UserTokens:    conversations,
		}, nil

	case constants.CandidateStoreMemory:
		return newMemoryStores(params)

	default:
		return Stores{}, errors.Errorf("unknown candidate store provider: %s", provider)
	}
}

func newFirestoreStores(params StoreParams) (Stores, error) {
	app := params.App
	if app == nil {
		var err error
		app, err = firebaseinfra.NewApp(firebaseinfra.Params{
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
		if err != nil {
			return Stores{}, err
		}
	}

	client, err := firebaseinfra.NewFirestoreClient(params.Ctx, params.Lc, app)
	if err != nil {
		return Stores{}, err
	}

	return Stores{
		Candidates:    firestore.NewCandidateRepository(client, params.Config, params.Logger),
		Conversations: firestore.NewConversationRepository(client, params.Config),
		UserTokens:    firestore.NewUserTokenRepository(client, params.Config),
	}, nil
}

func newMemoryStores(params StoreParams) (Stores, error) {
	candidates := memory.NewCandidateRepository(params.Config, params.Logger)
	conversations := memory.NewConversationRepository()

	if err := seedMemoryStores(params.Ctx, params.Config.CandidateStore, candidates, conversations); err != nil {
		return Stores{}, err
	}

	return Stores{
		Candidates:    candidates,
		Conversations: conversations,
		UserTokens:    conversations,
	}, nil
}

// seedMemoryStores loads the configured CSV seed. Every seeded candidate is
// also registered as a user so chat notifications can resolve its token.
func seedMemoryStores(ctx context.Context, cfg *config.CandidateStoreConfig, indexer repository.CandidateIndexer, conversations *memory.ConversationRepository) error {
	if cfg == nil || cfg.SeedURL == "" {
		return nil
	}

	seed, err := memory.LoadSeed(ctx, cfg.SeedURL, cfg.SeedKey)
	if err != nil {
		return errors.Wrap(err, "failed to load candidate seed")
	}

	for _, candidate := range seed {
		if err := indexer.IndexCandidate(ctx, candidate); err != nil {
			return errors.Wrapf(err, "failed to seed candidate %s", candidate.ID)
		}
		conversations.SaveUserToken(candidate.ID, candidate.FCMToken)
	}

	return nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStores),
)
