package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Supported place types
const (
	PlaceTypePark       = "park"
	PlaceTypeCafe       = "cafe"
	PlaceTypeHotel      = "hotel"
	PlaceTypeBeach      = "beach"
	PlaceTypeRestaurant = "restaurant"
	PlaceTypeStore      = "store"
	PlaceTypeOther      = "other"
)

// PlaceDB represents a point of interest row in the database
type PlaceDB struct {
	PlaceID              uuid.UUID           `json:"id" db:"id"`
	Name                 string              `json:"name" db:"name"`
	Type                 string              `json:"type" db:"type"`
	AddressStreet        *string             `json:"address_street" db:"address_street"`
	AddressCity          *string             `json:"address_city" db:"address_city"`
	AddressStateProvince *string             `json:"address_state_province" db:"address_state_province"`
	AddressPostalCode    *string             `json:"address_postal_code" db:"address_postal_code"`
	AddressCountry       *string             `json:"address_country" db:"address_country"`
	LocationLatitude     *float64            `json:"location_latitude" db:"location_latitude"`   // NULL when geocoding failed
	LocationLongitude    *float64            `json:"location_longitude" db:"location_longitude"` // NULL when geocoding failed
	Description          *string             `json:"description" db:"description"`
	Rating               decimal.NullDecimal `json:"rating" db:"rating"` // NUMERIC(2,1)
	PhoneNumber          *string             `json:"phone_number" db:"phone_number"`
	WebsiteURL           *string             `json:"website_url" db:"website_url"`
	HoursOfOperation     JSONB               `json:"hours_of_operation" db:"hours_of_operation"`
	ImagesURLs           pq.StringArray      `json:"images_urls" db:"images_urls"`
	AddedByUserID        uuid.NullUUID       `json:"added_by_user_id" db:"added_by_user_id"`
	IsVerified           bool                `json:"is_verified" db:"is_verified"`
	CreatedAt            time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at" db:"updated_at"`
}

// HasCoordinates reports whether both latitude and longitude are stored.
func (p *PlaceDB) HasCoordinates() bool {
	return p.LocationLatitude != nil && p.LocationLongitude != nil
}

// NearbyPlace is a place annotated with its distance from the query point.
type NearbyPlace struct {
	PlaceDB
	DistanceKm float64 `json:"distance_km"`
}

// PlacePatch carries a partial place update. Nil fields are left untouched.
type PlacePatch struct {
	Name                 *string
	Type                 *string
	AddressStreet        *string
	AddressCity          *string
	AddressStateProvince *string
	AddressPostalCode    *string
	AddressCountry       *string
	LocationLatitude     *float64
	LocationLongitude    *float64
	Description          *string
	Rating               *decimal.Decimal
	PhoneNumber          *string
	WebsiteURL           *string
	HoursOfOperation     JSONB
	ImagesURLs           []string
	IsVerified           *bool
}

// Apply copies every supplied field of p onto pl.
func (p PlacePatch) Apply(pl *PlaceDB) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Type != nil {
		pl.Type = *p.Type
	}
	if p.AddressStreet != nil {
		pl.AddressStreet = p.AddressStreet
	}
	if p.AddressCity != nil {
		pl.AddressCity = p.AddressCity
	}
	if p.AddressStateProvince != nil {
		pl.AddressStateProvince = p.AddressStateProvince
	}
	if p.AddressPostalCode != nil {
		pl.AddressPostalCode = p.AddressPostalCode
	}
	if p.AddressCountry != nil {
		pl.AddressCountry = p.AddressCountry
	}
	if p.LocationLatitude != nil {
		pl.LocationLatitude = p.LocationLatitude
	}
	if p.LocationLongitude != nil {
		pl.LocationLongitude = p.LocationLongitude
	}
	if p.Description != nil {
		pl.Description = p.Description
	}
	if p.Rating != nil {
		pl.Rating = decimal.NewNullDecimal(p.Rating.Round(1))
	}
	if p.PhoneNumber != nil {
		pl.PhoneNumber = p.PhoneNumber
	}
	if p.WebsiteURL != nil {
		pl.WebsiteURL = p.WebsiteURL
	}
	if p.HoursOfOperation != nil {
		pl.HoursOfOperation = p.HoursOfOperation
	}
	if p.ImagesURLs != nil {
		pl.ImagesURLs = pq.StringArray(p.ImagesURLs)
	}
	if p.IsVerified != nil {
		pl.IsVerified = *p.IsVerified
	}
}
