// Package memory keeps candidates and conversations in process memory. It backs
// local development and tests, optionally seeded from a CSV object.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
)

// CandidateRepository holds candidates in insertion order with a tile index
// over the located ones.
type CandidateRepository struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	order      []string
	candidates map[string]*entity.Candidate
	index      *TileIndex
}

// NewCandidateRepository creates an empty in-memory candidate repository
func NewCandidateRepository(cfg *config.Config, logger *slog.Logger) *CandidateRepository {
	zoom := 0
	if cfg.CandidateStore != nil {
		zoom = cfg.CandidateStore.TileZoom
	}
	if zoom <= 0 {
		storeCfg := &config.CandidateStoreConfig{}
		storeCfg.ApplyDefaults()
		zoom = storeCfg.TileZoom
	}

	return &CandidateRepository{
		logger:     logger,
		candidates: make(map[string]*entity.Candidate),
		index:      NewTileIndex(zoom),
	}
}

// FindAllCandidates returns every candidate, located or not, in insertion order
func (r *CandidateRepository) FindAllCandidates(ctx context.Context) ([]*entity.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.Join(repository.ErrCandidateStoreUnavailable, err), "failed to list candidates")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]*entity.Candidate, 0, len(r.order))
	for _, id := range r.order {
		candidates = append(candidates, cloneCandidate(r.candidates[id]))
	}

	return candidates, nil
}

// FindCandidatesNear returns located candidates from the tiles covering the
// search box around center
func (r *CandidateRepository) FindCandidatesNear(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.Join(repository.ErrCandidateStoreUnavailable, err), "failed to search candidates")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.index.Query(geo.BoundAround(center, radiusKm))
	candidates := make([]*entity.Candidate, 0, len(ids))
	for _, id := range ids {
		candidates = append(candidates, cloneCandidate(r.candidates[id]))
	}

	r.logger.Debug("Loaded candidates from memory",
		slog.Int("count", len(candidates)),
		slog.Int("indexed", r.index.Size()),
	)

	return candidates, nil
}

// IndexCandidate inserts or replaces a candidate. A replaced candidate keeps
// its original position in store order.
func (r *CandidateRepository) IndexCandidate(_ context.Context, candidate *entity.Candidate) error {
	if candidate == nil || candidate.ID == "" {
		return errors.New("candidate id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.candidates[candidate.ID]; !exists {
		r.order = append(r.order, candidate.ID)
	}
	r.candidates[candidate.ID] = cloneCandidate(candidate)

	if candidate.Location == nil {
		r.index.Remove(candidate.ID)

		return nil
	}
	r.index.Insert(candidate.ID, *candidate.Location)

	return nil
}

// RemoveCandidate deletes a candidate. Missing IDs are ignored.
func (r *CandidateRepository) RemoveCandidate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.candidates[id]; !exists {
		return nil
	}

	delete(r.candidates, id)
	r.index.Remove(id)
	for idx, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)

			break
		}
	}

	return nil
}

func cloneCandidate(candidate *entity.Candidate) *entity.Candidate {
	if candidate == nil {
		return nil
	}

	clone := *candidate
	if candidate.Location != nil {
		location := *candidate.Location
		clone.Location = &location
	}

	return &clone
}

var (
	_ repository.CandidateRepository = (*CandidateRepository)(nil)
	_ repository.CandidateIndexer    = (*CandidateRepository)(nil)
)
