package impl

import (
	"pulse/internal/domain/entity"
	"pulse/internal/domain/geo"
)

// eligibilityFilter decides which candidates receive a broadcast request.
type eligibilityFilter struct {
	radiusKm          float64
	wildcardBloodType string
}

// bloodTypeMatches reports whether a candidate's blood type satisfies the request.
// Comparison is exact; the wildcard on the request matches any candidate,
// including one that never set a blood type.
func (f eligibilityFilter) bloodTypeMatches(requested, candidate string) bool {
	return requested == f.wildcardBloodType || requested == candidate
}

// eligible returns the recipients of request among candidates, in candidate order.
// The requester, candidates without a token or location, candidates beyond the
// radius and incompatible blood types are dropped. Duplicate tokens are kept.
func (f eligibilityFilter) eligible(request *entity.BroadcastRequest, candidates []*entity.Candidate) []entity.EligibleRecipient {
	recipients := make([]entity.EligibleRecipient, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate == nil || candidate.ID == request.AuthorID {
			continue
		}

		if !candidate.Reachable() {
			continue
		}

		distanceKm := geo.DistanceKm(*request.Location, *candidate.Location)
		if !geo.WithinRadius(distanceKm, f.radiusKm) {
			continue
		}

		if !f.bloodTypeMatches(request.BloodType, candidate.BloodType) {
			continue
		}

		recipients = append(recipients, entity.EligibleRecipient{
			CandidateID: candidate.ID,
			FCMToken:    candidate.FCMToken,
			DistanceKm:  distanceKm,
		})
	}

	return recipients
}

func recipientTokens(recipients []entity.EligibleRecipient) []string {
	tokens := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		tokens = append(tokens, recipient.FCMToken)
	}

	return tokens
}
