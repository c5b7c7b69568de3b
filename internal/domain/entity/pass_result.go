package entity

// PassOutcome classifies how a notification pass ended.
type PassOutcome string

const (
	PassOutcomeDelivered       PassOutcome = "delivered"
	PassOutcomeMissingLocation PassOutcome = "missing_location"
	PassOutcomeNoRecipients    PassOutcome = "no_recipients"
	PassOutcomeRetrievalFailed PassOutcome = "retrieval_failed"
	PassOutcomeDispatchFailed  PassOutcome = "dispatch_failed"
)

// PassResult summarises one notification pass for logging and tests.
type PassResult struct {
	RequestID      string      `json:"requestId"`
	Outcome        PassOutcome `json:"outcome"`
	CandidateCount int         `json:"candidateCount"` // Candidates returned by the store.
	EligibleCount  int         `json:"eligibleCount"`  // Tokens addressed by the multicast.
	SuccessCount   int         `json:"successCount"`
	FailureCount   int         `json:"failureCount"`
	InvalidTokens  []string    `json:"invalidTokens,omitempty"`
}
