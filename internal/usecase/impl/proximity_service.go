package impl

import (
	"context"
	"log/slog"

	"pulse/config"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/repository"
	"pulse/internal/domain/service"
	"pulse/internal/errors"
	"pulse/internal/usecase"
)

type proximityService struct {
	logger        *slog.Logger
	candidateRepo repository.CandidateRepository
	pushSvc       service.PushService
	filter        eligibilityFilter
	clickAction   string
	batchSize     int
}

// NewProximityService creates a new proximity notifier instance
func NewProximityService(
	logger *slog.Logger,
	cfg *config.Config,
	candidateRepo repository.CandidateRepository,
	pushSvc service.PushService,
) usecase.ProximityUsecase {
	notifierCfg := cfg.Notifier
	if notifierCfg == nil {
		notifierCfg = &config.NotifierConfig{}
	}
	notifierCfg.ApplyDefaults()

	return &proximityService{
		logger:        logger,
		candidateRepo: candidateRepo,
		pushSvc:       pushSvc,
		filter: eligibilityFilter{
			radiusKm:          notifierCfg.RadiusKm,
			wildcardBloodType: notifierCfg.WildcardBloodType,
		},
		clickAction: notifierCfg.ClickAction,
		batchSize:   min(notifierCfg.MulticastBatchSize, service.MaxMulticastTokens),
	}
}

// Notify runs one proximity pass for the request
func (s *proximityService) Notify(ctx context.Context, request *entity.BroadcastRequest) (*entity.PassResult, error) {
	result := &entity.PassResult{}
	if request == nil {
		result.Outcome = entity.PassOutcomeMissingLocation

		return result, nil
	}

	result.RequestID = request.ID
	logger := s.logger.With(slog.String("broadcast_request_id", request.ID))

	if !request.HasLocation() {
		logger.Info("Broadcast request has no location, skipping notification pass")
		result.Outcome = entity.PassOutcomeMissingLocation

		return result, nil
	}

	candidates, err := s.candidateRepo.FindCandidatesNear(ctx, *request.Location, s.filter.radiusKm)
	if err != nil {
		logger.Error("Failed to retrieve candidates", slog.Any("error", err))
		result.Outcome = entity.PassOutcomeRetrievalFailed

		return result, errors.Wrap(domainerrors.ErrRetrievalFailure.WithDetails(err.Error()), "find candidates near request")
	}
	result.CandidateCount = len(candidates)

	recipients := s.filter.eligible(request, candidates)
	if len(recipients) == 0 {
		logger.Info("No eligible recipients for broadcast request",
			slog.Int("candidate_count", len(candidates)),
		)
		result.Outcome = entity.PassOutcomeNoRecipients

		return result, nil
	}

	tokens := recipientTokens(recipients)
	result.EligibleCount = len(tokens)

	report, dispatchErr := s.dispatch(ctx, tokens, newBroadcastPayload(request, s.clickAction))
	result.SuccessCount = report.SuccessCount
	result.FailureCount = report.FailureCount
	result.InvalidTokens = report.InvalidTokens()

	if dispatchErr != nil {
		logger.Error("Failed to dispatch broadcast notifications",
			slog.Int("success_count", report.SuccessCount),
			slog.Any("error", dispatchErr),
		)
		result.Outcome = entity.PassOutcomeDispatchFailed

		return result, errors.Wrap(domainerrors.ErrDispatchFailure.WithDetails(dispatchErr.Error()), "send multicast")
	}

	logger.Info("Broadcast notifications sent", slog.Int("success_count", report.SuccessCount))
	result.Outcome = entity.PassOutcomeDelivered

	return result, nil
}

// dispatch sends the payload in batches the push service accepts. A failed
// batch does not stop later ones; its tokens count as failures and the first
// batch error is returned.
func (s *proximityService) dispatch(ctx context.Context, tokens []string, payload *entity.NotificationPayload) (*entity.DeliveryReport, error) {
	total := &entity.DeliveryReport{}
	var firstErr error

	for idx := 0; idx < len(tokens); idx += s.batchSize {
		end := min(idx+s.batchSize, len(tokens))
		batch := tokens[idx:end]

		report, err := s.pushSvc.SendMulticast(ctx, batch, payload)
		if err != nil {
			s.logger.Warn("Multicast batch failed",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			total.FailureCount += len(batch)
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		if report == nil {
			continue
		}

		total.SuccessCount += report.SuccessCount
		total.FailureCount += report.FailureCount
		total.Failures = append(total.Failures, report.Failures...)
	}

	return total, firstErr
}
