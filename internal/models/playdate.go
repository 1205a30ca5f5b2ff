package models

import (
	"time"

	"github.com/google/uuid"
)

// Playdate statuses
const (
	PlaydateStatusPending   = "pending"
	PlaydateStatusAccepted  = "accepted"
	PlaydateStatusDeclined  = "declined"
	PlaydateStatusCancelled = "cancelled"
	PlaydateStatusCompleted = "completed"
)

// PlaydateStatusUpcoming is a listing filter, not a stored status:
// playdate_time >= now and status in (pending, accepted).
const PlaydateStatusUpcoming = "upcoming"

// PlaydateDB represents a playdate row in the database
type PlaydateDB struct {
	PlaydateID          uuid.UUID `json:"id" db:"id"`
	Dog1ID              uuid.UUID `json:"dog1_id" db:"dog1_id"`
	Dog2ID              uuid.UUID `json:"dog2_id" db:"dog2_id"`
	RequesterDogID      uuid.UUID `json:"requester_dog_id" db:"requester_dog_id"`
	PlaydateTime        time.Time `json:"playdate_time" db:"playdate_time"`
	LocationDescription *string   `json:"location_description" db:"location_description"`
	LocationLatitude    *float64  `json:"location_latitude" db:"location_latitude"`
	LocationLongitude   *float64  `json:"location_longitude" db:"location_longitude"`
	Status              string    `json:"status" db:"status"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// PlaydatePatch reschedules or relocates a playdate. Nil fields are left untouched.
type PlaydatePatch struct {
	PlaydateTime        *time.Time
	LocationDescription *string
	LocationLatitude    *float64
	LocationLongitude   *float64
}

// Apply copies every supplied field of p onto pd.
func (p PlaydatePatch) Apply(pd *PlaydateDB) {
	if p.PlaydateTime != nil {
		pd.PlaydateTime = *p.PlaydateTime
	}
	if p.LocationDescription != nil {
		pd.LocationDescription = p.LocationDescription
	}
	if p.LocationLatitude != nil {
		pd.LocationLatitude = p.LocationLatitude
	}
	if p.LocationLongitude != nil {
		pd.LocationLongitude = p.LocationLongitude
	}
}

// playdateTransitions lists the allowed target statuses for each non-terminal status.
var playdateTransitions = map[string]map[string]bool{
	PlaydateStatusPending: {
		PlaydateStatusAccepted:  true,
		PlaydateStatusDeclined:  true,
		PlaydateStatusCancelled: true,
	},
	PlaydateStatusAccepted: {
		PlaydateStatusCancelled: true,
		PlaydateStatusCompleted: true,
	},
}

// IsPlaydateStatus reports whether s is one of the five stored statuses.
func IsPlaydateStatus(s string) bool {
	switch s {
	case PlaydateStatusPending, PlaydateStatusAccepted, PlaydateStatusDeclined,
		PlaydateStatusCancelled, PlaydateStatusCompleted:
		return true
	}
	return false
}

// IsTerminalPlaydateStatus reports whether no transition may leave status s.
func IsTerminalPlaydateStatus(s string) bool {
	_, ok := playdateTransitions[s]
	return !ok
}

// CanTransitionPlaydate reports whether from -> to is in the transition table.
func CanTransitionPlaydate(from, to string) bool {
	return playdateTransitions[from][to]
}

// RecipientOnlyTransition reports whether from -> to may only be performed by the
// owner of the dog that did not request the playdate.
func RecipientOnlyTransition(from, to string) bool {
	return from == PlaydateStatusPending &&
		(to == PlaydateStatusAccepted || to == PlaydateStatusDeclined)
}

// IsEditablePlaydateStatus reports whether time and location may still change.
func IsEditablePlaydateStatus(s string) bool {
	return s == PlaydateStatusPending || s == PlaydateStatusAccepted
}

// HasDog reports whether dogID is one of the two participants.
func (p *PlaydateDB) HasDog(dogID uuid.UUID) bool {
	return p.Dog1ID == dogID || p.Dog2ID == dogID
}
