package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID            uuid.UUID `json:"id" db:"id"`                                 // Primary key
	Name              string    `json:"name" db:"name"`                             // Display name
	Email             string    `json:"email" db:"email"`                           // Unique email
	PasswordHash      string    `json:"-" db:"password_hash"`                       // bcrypt digest, never serialized
	LocationLatitude  *float64  `json:"location_latitude" db:"location_latitude"`   // Optional home latitude
	LocationLongitude *float64  `json:"location_longitude" db:"location_longitude"` // Optional home longitude
	ProfileImageURL   *string   `json:"profile_image_url" db:"profile_image_url"`   // Optional avatar
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}

// UserPatch holds the optional profile fields of a partial user update.
// Nil fields keep their stored value.
type UserPatch struct {
	Name              *string
	LocationLatitude  *float64
	LocationLongitude *float64
	ProfileImageURL   *string
}

// Apply copies every non-nil field of p onto u.
func (p UserPatch) Apply(u *UserDB) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.LocationLatitude != nil {
		u.LocationLatitude = p.LocationLatitude
	}
	if p.LocationLongitude != nil {
		u.LocationLongitude = p.LocationLongitude
	}
	if p.ProfileImageURL != nil {
		u.ProfileImageURL = p.ProfileImageURL
	}
}
