// Package constants contains string constants shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Candidate store providers
const (
	CandidateStoreFirestore = "firestore"
	CandidateStorePostgres  = "postgres"
	CandidateStoreRedis     = "redis"
	CandidateStoreMemory    = "memory"
)

// Event types carried in the Pub/Sub "event_type" attribute.
const (
	EventTypeBroadcastRequestCreated = "broadcast_request.created"
	EventTypeChatMessageCreated      = "chat_message.created"
)

// Notification data "type" values understood by the mobile client.
const (
	NotificationTypeBloodRequest = "blood_request"
	NotificationTypeChat         = "chat"
)

// SystemSenderID marks chat messages generated by the backend itself.
const SystemSenderID = "system"
