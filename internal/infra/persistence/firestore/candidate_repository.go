// Package firestore reads candidates and conversations from Cloud Firestore,
// the document store the mobile app writes user profiles to.
package firestore

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"

	firestoreLib "cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

type candidateRepository struct {
	client        *firestoreLib.Client
	logger        *slog.Logger
	collection    string
	geoPointQuery bool
}

// NewCandidateRepository creates a new Firestore-backed candidate repository
func NewCandidateRepository(client *firestoreLib.Client, cfg *config.Config, logger *slog.Logger) repository.CandidateRepository {
	return &candidateRepository{
		client:        client,
		logger:        logger,
		collection:    cfg.CandidateStore.UsersCollection,
		geoPointQuery: cfg.CandidateStore.GeoPointQuery,
	}
}

// FindAllCandidates reads every user profile document
func (r *candidateRepository) FindAllCandidates(ctx context.Context) ([]*entity.Candidate, error) {
	return r.collect(ctx, r.client.Collection(r.collection).Query)
}

// FindCandidatesNear narrows the read to a latitude band when locations are
// stored as GeoPoints, which Firestore orders by latitude first. Otherwise, or
// when the band reaches a pole, every document is read.
func (r *candidateRepository) FindCandidatesNear(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Candidate, error) {
	if !r.geoPointQuery {
		return r.FindAllCandidates(ctx)
	}

	bound := geo.BoundAround(center, radiusKm)
	if bound.Min.Lat() <= -90 || bound.Max.Lat() >= 90 {
		return r.FindAllCandidates(ctx)
	}

	query := r.client.Collection(r.collection).
		Where(fieldLocation, ">=", &latlng.LatLng{Latitude: bound.Min.Lat(), Longitude: -180}).
		Where(fieldLocation, "<=", &latlng.LatLng{Latitude: bound.Max.Lat(), Longitude: 180})

	return r.collect(ctx, query)
}

func (r *candidateRepository) collect(ctx context.Context, query firestoreLib.Query) ([]*entity.Candidate, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	docs, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(errors.Join(repository.ErrCandidateStoreUnavailable, err), "failed to read user profiles")
	}

	candidates := make([]*entity.Candidate, 0, len(docs))
	for _, doc := range docs {
		candidates = append(candidates, toCandidateDomain(doc.Ref.ID, doc.Data()))
	}

	r.logger.Debug("Loaded candidates from Firestore", slog.Int("count", len(candidates)))

	return candidates, nil
}
