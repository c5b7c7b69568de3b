package entity

// ChatMessage is a message appended to a conversation.
type ChatMessage struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName"`
	Text           string `json:"text"`
}

// Conversation lists the users taking part in a chat.
type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
}

// UserToken is the delivery token registered for a single user.
type UserToken struct {
	UserID   string `json:"userId"`
	FCMToken string `json:"fcmToken"`
}
