package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Supported dog sizes
const (
	DogSizeSmall  = "small"
	DogSizeMedium = "medium"
	DogSizeLarge  = "large"
)

// DogDB represents a dog profile row in the database
type DogDB struct {
	DogID           uuid.UUID      `json:"id" db:"id"`                               // Primary key
	UserID          uuid.UUID      `json:"user_id" db:"user_id"`                     // Owner, immutable after creation
	Name            string         `json:"name" db:"name"`                           // Dog name
	Breed           *string        `json:"breed" db:"breed"`                         // Optional breed
	AgeYears        *int           `json:"age_years" db:"age_years"`                 // Optional age in years
	Size            *string        `json:"size" db:"size"`                           // small, medium or large
	Temperament     pq.StringArray `json:"temperament" db:"temperament"`             // Unordered temperament tags
	ProfileImageURL *string        `json:"profile_image_url" db:"profile_image_url"` // Optional picture
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// DogPatch carries a partial dog update. Nil fields are left untouched.
type DogPatch struct {
	Name            *string
	Breed           *string
	AgeYears        *int
	Size            *string
	Temperament     []string
	ProfileImageURL *string
}

// Apply copies every supplied field of p onto d.
func (p DogPatch) Apply(d *DogDB) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Breed != nil {
		d.Breed = p.Breed
	}
	if p.AgeYears != nil {
		d.AgeYears = p.AgeYears
	}
	if p.Size != nil {
		d.Size = p.Size
	}
	if p.Temperament != nil {
		d.Temperament = pq.StringArray(p.Temperament)
	}
	if p.ProfileImageURL != nil {
		d.ProfileImageURL = p.ProfileImageURL
	}
}
