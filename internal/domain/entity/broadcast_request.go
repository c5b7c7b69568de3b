// Package entity contains the core business objects of the project.
package entity

import "time"

// WildcardBloodType matches every candidate regardless of blood type.
const WildcardBloodType = "Any"

// BroadcastRequest represents a blood donation request that triggers one notification pass.
// It is immutable once created.
type BroadcastRequest struct {
	ID         string      `json:"id"`                 // Identifier assigned by the event source.
	AuthorID   string      `json:"authorId"`           // The user who created the request.
	AuthorName string      `json:"authorName"`         // Display name of the requester.
	BloodType  string      `json:"bloodType"`          // Requested blood type, or WildcardBloodType.
	Title      string      `json:"title"`              // Free-text title.
	Location   *Coordinate `json:"location,omitempty"` // Nil means the request cannot be geo-matched.
	CreatedAt  time.Time   `json:"createdAt,omitzero"` // Timestamp assigned by the event source.
}

// HasLocation reports whether the request can be geo-matched.
func (r *BroadcastRequest) HasLocation() bool {
	return r != nil && r.Location != nil
}
