// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"

	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/geo"
	"pulse/internal/domain/repository"
	"pulse/internal/errors"
	"pulse/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const findDonorsWithinRadiusQuery = `
	SELECT d.*
	FROM donors d
	WHERE d.deleted_at IS NULL
	  AND d.location IS NOT NULL
	  AND ST_DWithin(
	    d.location,
	    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
	    ?
	  )
	ORDER BY d.created_at, d.id
`

// CandidateRepository implements repository.CandidateRepository and
// repository.CandidateIndexer over the donors table.
type CandidateRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewCandidateRepository is the constructor for CandidateRepository.
func NewCandidateRepository(db *gorm.DB, logger *slog.Logger) *CandidateRepository {
	return &CandidateRepository{
		db:     db,
		logger: logger,
	}
}

// FindAllCandidates reads every donor from a replica in creation order.
func (repo *CandidateRepository) FindAllCandidates(ctx context.Context) ([]*entity.Candidate, error) {
	var donorModels []*model.DonorModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("created_at, id").
		Find(&donorModels).Error; err != nil {
		return nil, unavailable(err, "failed to find candidates")
	}

	return toCandidateDomains(donorModels), nil
}

// FindCandidatesNear uses PostGIS ST_DWithin on the geography column, with the
// radius widened slightly since PostGIS measures on the spheroid.
func (repo *CandidateRepository) FindCandidatesNear(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Candidate, error) {
	var donorModels []*model.DonorModel

	meters := geo.SearchRadiusKm(radiusKm) * 1000
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(findDonorsWithinRadiusQuery, center.Longitude, center.Latitude, meters).
		Scan(&donorModels).Error; err != nil {
		return nil, unavailable(err, "failed to find candidates within radius")
	}

	repo.logger.Debug("Loaded candidates from PostgreSQL", slog.Int("count", len(donorModels)))

	return toCandidateDomains(donorModels), nil
}

// IndexCandidate upserts the donor's notification attributes. Name and
// creation time of an existing donor are left untouched.
func (repo *CandidateRepository) IndexCandidate(ctx context.Context, candidate *entity.Candidate) error {
	donorM := fromCandidateDomain(candidate)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"blood_type", "latitude", "longitude", "fcm_token", "updated_at", "deleted_at"}),
		}).
		Create(donorM).Error
	if err == nil {
		return nil
	}

	if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid candidate " + candidate.ID)
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to index candidate")
}

// RemoveCandidate soft-deletes the donor. Missing IDs are ignored.
func (repo *CandidateRepository) RemoveCandidate(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonorModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove candidate")
	}

	return nil
}

func unavailable(err error, message string) error {
	return errors.Wrap(errors.Join(repository.ErrCandidateStoreUnavailable, err), message)
}

// --- Mapper Functions ---

func toCandidateDomains(donorModels []*model.DonorModel) []*entity.Candidate {
	candidates := make([]*entity.Candidate, 0, len(donorModels))
	for _, donorM := range donorModels {
		candidates = append(candidates, toCandidateDomain(donorM))
	}

	return candidates
}

// toCandidateDomain converts a GORM DonorModel to a domain Candidate entity.
// A location is set only when both coordinates are present.
func toCandidateDomain(data *model.DonorModel) *entity.Candidate {
	if data == nil {
		return nil
	}

	candidate := &entity.Candidate{ID: data.ID}
	if data.BloodType != nil {
		candidate.BloodType = *data.BloodType
	}
	if data.FCMToken != nil {
		candidate.FCMToken = *data.FCMToken
	}
	if data.Latitude != nil && data.Longitude != nil {
		candidate.Location = &entity.Coordinate{Latitude: *data.Latitude, Longitude: *data.Longitude}
	}

	return candidate
}

// fromCandidateDomain converts a domain Candidate entity to a GORM DonorModel.
func fromCandidateDomain(data *entity.Candidate) *model.DonorModel {
	if data == nil {
		return nil
	}

	donorM := &model.DonorModel{
		ID:        data.ID,
		BloodType: optionalString(data.BloodType),
		FCMToken:  optionalString(data.FCMToken),
	}
	if data.Location != nil {
		lat, lng := data.Location.Latitude, data.Location.Longitude
		donorM.Latitude = &lat
		donorM.Longitude = &lng
	}

	return donorM
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

var (
	_ repository.CandidateRepository = (*CandidateRepository)(nil)
	_ repository.CandidateIndexer    = (*CandidateRepository)(nil)
)
