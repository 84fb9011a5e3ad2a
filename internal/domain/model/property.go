package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// Property is a landlord-owned listing.
type Property struct {
	ID          string
	LandlordID  string
	Title       string
	Address     string
	MonthlyRent int64 // cents
	Bedrooms    int
	Bathrooms   int
	Status      valueobject.PropertyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProperty creates a validated, available listing.
func NewProperty(landlordID, title, address string, monthlyRent int64, bedrooms, bathrooms int, now time.Time) (Property, error) {
	if landlordID == "" {
		return Property{}, errors.New("landlord ID is required")
	}
	if title == "" {
		return Property{}, errors.New("title is required")
	}
	if monthlyRent <= 0 {
		return Property{}, errors.New("monthly rent must be positive")
	}
	if bedrooms < 0 || bathrooms < 0 {
		return Property{}, errors.New("room counts must not be negative")
	}
	return Property{
		ID:          uuid.New().String(),
		LandlordID:  landlordID,
		Title:       title,
		Address:     address,
		MonthlyRent: monthlyRent,
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Status:      valueobject.PropertyAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
