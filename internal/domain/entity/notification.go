package entity

// NotificationPayload is the push message fanned out to every recipient of a pass.
type NotificationPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"` // Routing hints consumed by the mobile client.
}

// Keys of NotificationPayload.Data.
const (
	PayloadKeyType           = "type"
	PayloadKeyRequestID      = "requestId"
	PayloadKeySenderID       = "senderId"
	PayloadKeyConversationID = "conversationId"
	PayloadKeyClickAction    = "click_action"
)

// DeliveryFailure describes one token the push service could not deliver to.
type DeliveryFailure struct {
	Token   string `json:"token"`
	Reason  string `json:"reason"`
	Invalid bool   `json:"invalid"` // The token is unregistered or malformed and will never succeed.
}

// DeliveryReport is the aggregate result of one multicast call.
type DeliveryReport struct {
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
	Failures     []DeliveryFailure `json:"failures"`
}

// InvalidTokens returns the tokens reported as permanently undeliverable.
func (r *DeliveryReport) InvalidTokens() []string {
	if r == nil {
		return nil
	}

	tokens := make([]string, 0, len(r.Failures))
	for _, failure := range r.Failures {
		if failure.Invalid {
			tokens = append(tokens, failure.Token)
		}
	}

	return tokens
}
