package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// Lease binds one tenant to one property for a date range.
type Lease struct {
	ID          string
	TenantID    string
	PropertyID  string
	StartDate   time.Time
	EndDate     time.Time
	MonthlyRent int64 // cents
	Status      valueobject.LeaseStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLease creates a validated, active lease.
func NewLease(tenantID, propertyID string, start, end time.Time, monthlyRent int64, now time.Time) (Lease, error) {
	if tenantID == "" {
		return Lease{}, errors.New("tenant ID is required")
	}
	if propertyID == "" {
		return Lease{}, errors.New("property ID is required")
	}
	if !end.After(start) {
		return Lease{}, errors.New("lease end date must be after start date")
	}
	if monthlyRent <= 0 {
		return Lease{}, errors.New("monthly rent must be positive")
	}
	return Lease{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		PropertyID:  propertyID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: monthlyRent,
		Status:      valueobject.LeaseActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
