// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pulse/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCandidateStoreUnavailable is returned when the backing store cannot be queried.
var ErrCandidateStoreUnavailable = errors.New("candidate store unavailable")

// CandidateRepository reads potential notification recipients.
// Implementations are read-only from the notifier's point of view.
type CandidateRepository interface {
	// FindAllCandidates returns every user record in store order.
	FindAllCandidates(ctx context.Context) ([]*entity.Candidate, error)

	// FindCandidatesNear returns candidates that may lie within radiusKm of center.
	// The result may include candidates slightly outside the radius, and candidates
	// without a location are never returned. Callers must still apply the
	// distance check.
	FindCandidatesNear(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Candidate, error)
}

// CandidateIndexer is the write path used by loaders that keep a geo index warm.
type CandidateIndexer interface {
	// IndexCandidate inserts or replaces a candidate.
	IndexCandidate(ctx context.Context, candidate *entity.Candidate) error

	// RemoveCandidate drops a candidate from the index. Missing IDs are ignored.
	RemoveCandidate(ctx context.Context, id string) error
}
