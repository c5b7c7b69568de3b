package model

import (
	"time"
)

// ConversationModel mirrors the 'conversations' table.
type ConversationModel struct {
	ID           string                         `gorm:"type:varchar(128);primaryKey"`
	Participants []ConversationParticipantModel `gorm:"foreignKey:ConversationID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// ConversationParticipantModel mirrors the 'conversation_participants' join table.
type ConversationParticipantModel struct {
	ConversationID string `gorm:"type:varchar(128);primaryKey"`
	UserID         string `gorm:"type:varchar(128);primaryKey;index"`
	JoinedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationParticipantModel) TableName() string {
	return "conversation_participants"
}
