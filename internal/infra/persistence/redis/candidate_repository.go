package redis

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	hashFieldBloodType = "bloodType"
	hashFieldFCMToken  = "fcmToken"
)

// CandidateRepository stores locations in one GEO sorted set and the other
// attributes in a hash per candidate. Candidates without a location live only
// in their hash and are never returned, since they can never be eligible.
type CandidateRepository struct {
	client     redis.UniversalClient
	logger     *slog.Logger
	geoKey     string
	hashPrefix string
}

// NewCandidateRepository creates a new Redis-backed candidate repository
func NewCandidateRepository(client *redis.Client, cfg *config.Config, logger *slog.Logger) *CandidateRepository {
	redisCfg := cfg.Redis
	if redisCfg == nil {
		redisCfg = &config.RedisConfig{}
	}
	redisCfg.ApplyDefaults()

	return &CandidateRepository{
		client:     client,
		logger:     logger,
		geoKey:     redisCfg.GeoKey,
		hashPrefix: redisCfg.HashPrefix,
	}
}

// FindAllCandidates returns every candidate in the GEO index
func (r *CandidateRepository) FindAllCandidates(ctx context.Context) ([]*entity.Candidate, error) {
	ids, err := r.client.ZRange(ctx, r.geoKey, 0, -1).Result()
	if err != nil {
		return nil, r.unavailable(err, "list candidates")
	}
	if len(ids) == 0 {
		return []*entity.Candidate{}, nil
	}

	positions, err := r.client.GeoPos(ctx, r.geoKey, ids...).Result()
	if err != nil {
		return nil, r.unavailable(err, "read candidate positions")
	}

	locations := make([]redis.GeoLocation, 0, len(ids))
	for idx, id := range ids {
		if idx >= len(positions) || positions[idx] == nil {
			continue
		}
		locations = append(locations, redis.GeoLocation{
			Name:      id,
			Longitude: positions[idx].Longitude,
			Latitude:  positions[idx].Latitude,
		})
	}

	return r.hydrate(ctx, locations)
}

// FindCandidatesNear runs GEOSEARCH around center with a slightly widened radius
func (r *CandidateRepository) FindCandidatesNear(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Candidate, error) {
	locations, err := r.client.GeoSearchLocation(ctx, r.geoKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  center.Longitude,
			Latitude:   center.Latitude,
			Radius:     geo.SearchRadiusKm(radiusKm),
			RadiusUnit: "km",
		},
		WithCoord: true,
	}).Result()
	if err != nil {
		return nil, r.unavailable(err, "search candidates")
	}

	return r.hydrate(ctx, locations)
}

// IndexCandidate writes the candidate hash and, when located, its GEO member
func (r *CandidateRepository) IndexCandidate(ctx context.Context, candidate *entity.Candidate) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.hashKey(candidate.ID), toHashFields(candidate))

		if candidate.Location == nil {
			pipe.ZRem(ctx, r.geoKey, candidate.ID)

			return nil
		}

		pipe.GeoAdd(ctx, r.geoKey, &redis.GeoLocation{
			Name:      candidate.ID,
			Longitude: candidate.Location.Longitude,
			Latitude:  candidate.Location.Latitude,
		})

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to index candidate %s", candidate.ID)
	}

	return nil
}

// RemoveCandidate deletes the candidate hash and GEO member
func (r *CandidateRepository) RemoveCandidate(ctx context.Context, id string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, r.geoKey, id)
		pipe.Del(ctx, r.hashKey(id))

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to remove candidate %s", id)
	}

	return nil
}

// hydrate loads the hash of every located member in one round trip
func (r *CandidateRepository) hydrate(ctx context.Context, locations []redis.GeoLocation) ([]*entity.Candidate, error) {
	if len(locations) == 0 {
		return []*entity.Candidate{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(locations))
	for idx, location := range locations {
		cmds[idx] = pipe.HGetAll(ctx, r.hashKey(location.Name))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, r.unavailable(err, "read candidate attributes")
	}

	candidates := make([]*entity.Candidate, 0, len(locations))
	for idx, location := range locations {
		candidates = append(candidates, toCandidateDomain(location, cmds[idx].Val()))
	}

	r.logger.Debug("Loaded candidates from Redis", slog.Int("count", len(candidates)))

	return candidates, nil
}

func (r *CandidateRepository) hashKey(id string) string {
	return r.hashPrefix + id
}

func (r *CandidateRepository) unavailable(err error, action string) error {
	return errors.Wrap(errors.Join(repository.ErrCandidateStoreUnavailable, err), "failed to "+action)
}

func toCandidateDomain(location redis.GeoLocation, fields map[string]string) *entity.Candidate {
	return &entity.Candidate{
		ID:        location.Name,
		BloodType: fields[hashFieldBloodType],
		FCMToken:  fields[hashFieldFCMToken],
		Location:  &entity.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude},
	}
}

func toHashFields(candidate *entity.Candidate) map[string]any {
	return map[string]any{
		hashFieldBloodType: candidate.BloodType,
		hashFieldFCMToken:  candidate.FCMToken,
	}
}

var (
	_ repository.CandidateRepository = (*CandidateRepository)(nil)
	_ repository.CandidateIndexer    = (*CandidateRepository)(nil)
)
