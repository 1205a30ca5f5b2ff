package models

import (
	"time"

	"github.com/google/uuid"
)

// Playdate event types published to Kafka
const (
	PlaydateEventCreated       = "playdate.created"
	PlaydateEventStatusChanged = "playdate.status_changed"
	PlaydateEventUpdated       = "playdate.updated"
	PlaydateEventDeleted       = "playdate.deleted"
)

// PlaydateEvent describes a change to a playdate for downstream consumers
type PlaydateEvent struct {
	EventID        string    `json:"event_id"`                  // Unique event identifier
	Type           string    `json:"type"`                      // One of the PlaydateEvent* constants
	PlaydateID     uuid.UUID `json:"playdate_id"`               // Affected playdate
	Dog1ID         uuid.UUID `json:"dog1_id"`                   // First participant
	Dog2ID         uuid.UUID `json:"dog2_id"`                   // Second participant
	ActorUserID    uuid.UUID `json:"actor_user_id"`             // User who triggered the change
	Status         string    `json:"status"`                    // Status after the change
	PreviousStatus string    `json:"previous_status,omitempty"` // Status before a status change
	PlaydateTime   time.Time `json:"playdate_time"`             // Scheduled time
	Timestamp      int64     `json:"timestamp"`                 // Unix time of the change
}

// PasswordResetRequest asks the mailer to send a reset link
type PasswordResetRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
