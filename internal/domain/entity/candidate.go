package entity

// Candidate is a projection of a user profile considered for notification.
// Every attribute other than ID is optional.
type Candidate struct {
	ID        string      `json:"id"`                 // The user's identifier.
	BloodType string      `json:"bloodType"`          // Empty when the user never set one.
	Location  *Coordinate `json:"location,omitempty"` // Last known location.
	FCMToken  string      `json:"fcmToken"`           // Firebase Cloud Messaging token, empty when not registered.
}

// Reachable reports whether the candidate has both a delivery token and a location.
func (c *Candidate) Reachable() bool {
	return c != nil && c.FCMToken != "" && c.Location != nil
}

// EligibleRecipient is a candidate that passed every eligibility check during one pass.
type EligibleRecipient struct {
	CandidateID string  // The candidate's identifier.
	FCMToken    string  // Token the payload is delivered to.
	DistanceKm  float64 // Great-circle distance to the request location.
}
