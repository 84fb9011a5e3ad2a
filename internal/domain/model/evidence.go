package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// Supporting evidence records. Each is independently created and verified,
// and consumed read-only by the scoring calculators.

// CreditCheck is one credit bureau pull for a tenant.
type CreditCheck struct {
	ID         string
	TenantID   string
	Bureau     string
	Score      int // 300-900 bureau scale, meaningful only when COMPLETED
	Status     valueobject.CreditCheckStatus
	ReportDate time.Time
	CreatedAt  time.Time
}

// NewCreditCheck records a completed bureau pull.
func NewCreditCheck(tenantID, bureau string, score int, reportDate, now time.Time) (CreditCheck, error) {
	if tenantID == "" {
		return CreditCheck{}, errors.New("tenant ID is required")
	}
	if bureau == "" {
		return CreditCheck{}, errors.New("bureau is required")
	}
	if score < 300 || score > 900 {
		return CreditCheck{}, errors.New("credit score must be on the 300-900 scale")
	}
	return CreditCheck{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Bureau:     bureau,
		Score:      score,
		Status:     valueobject.CreditCheckCompleted,
		ReportDate: reportDate,
		CreatedAt:  now,
	}, nil
}

// EmploymentRecord is one job in a tenant's employment history.
// A nil EndDate means the tenant currently holds the position.
type EmploymentRecord struct {
	ID            string
	TenantID      string
	Employer      string
	Position      string
	StartDate     time.Time
	EndDate       *time.Time
	MonthlyIncome int64 // cents
	Verified      bool
	CreatedAt     time.Time
}

// NewEmploymentRecord creates a validated employment record.
func NewEmploymentRecord(tenantID, employer, position string, start time.Time, end *time.Time, monthlyIncome int64, now time.Time) (EmploymentRecord, error) {
	if tenantID == "" {
		return EmploymentRecord{}, errors.New("tenant ID is required")
	}
	if employer == "" {
		return EmploymentRecord{}, errors.New("employer is required")
	}
	if end != nil && end.Before(start) {
		return EmploymentRecord{}, errors.New("end date must not precede start date")
	}
	if monthlyIncome < 0 {
		return EmploymentRecord{}, errors.New("monthly income must not be negative")
	}
	return EmploymentRecord{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Employer:      employer,
		Position:      position,
		StartDate:     start,
		EndDate:       end,
		MonthlyIncome: monthlyIncome,
		CreatedAt:     now,
	}, nil
}

// Current reports whether the position is still held.
func (e EmploymentRecord) Current() bool { return e.EndDate == nil }

// TenureMonths returns how long the position has been (or was) held.
func (e EmploymentRecord) TenureMonths(now time.Time) int {
	end := now
	if e.EndDate != nil {
		end = *e.EndDate
	}
	if end.Before(e.StartDate) {
		return 0
	}
	return monthsBetween(e.StartDate, end)
}

// RentalHistoryRecord is one prior tenancy of a tenant.
type RentalHistoryRecord struct {
	ID                  string
	TenantID            string
	LandlordName        string
	Address             string
	StartDate           time.Time
	EndDate             time.Time
	MonthlyRent         int64 // cents
	OnTimePercent       int   // 0-100
	LeftInGoodCondition bool
	ReasonForLeaving    string
	Verified            bool
	CreatedAt           time.Time
}

// NewRentalHistoryRecord creates a validated rental history record.
func NewRentalHistoryRecord(
	tenantID, landlordName, address string,
	start, end time.Time,
	monthlyRent int64,
	onTimePercent int,
	goodCondition bool,
	reasonForLeaving string,
	now time.Time,
) (RentalHistoryRecord, error) {
	if tenantID == "" {
		return RentalHistoryRecord{}, errors.New("tenant ID is required")
	}
	if landlordName == "" {
		return RentalHistoryRecord{}, errors.New("landlord name is required")
	}
	if end.Before(start) {
		return RentalHistoryRecord{}, errors.New("end date must not precede start date")
	}
	if onTimePercent < 0 || onTimePercent > 100 {
		return RentalHistoryRecord{}, errors.New("on-time percent must be in [0,100]")
	}
	return RentalHistoryRecord{
		ID:                  uuid.New().String(),
		TenantID:            tenantID,
		LandlordName:        landlordName,
		Address:             address,
		StartDate:           start,
		EndDate:             end,
		MonthlyRent:         monthlyRent,
		OnTimePercent:       onTimePercent,
		LeftInGoodCondition: goodCondition,
		ReasonForLeaving:    reasonForLeaving,
		CreatedAt:           now,
	}, nil
}

// TenancyMonths returns the length of the tenancy.
func (r RentalHistoryRecord) TenancyMonths() int {
	return monthsBetween(r.StartDate, r.EndDate)
}

// Reference is a third party vouching for a tenant.
type Reference struct {
	ID           string
	TenantID     string
	ReferrerName string
	Relationship valueobject.ReferenceRelationship
	Rating       int // 1-5
	Verified     bool
	Comments     string
	CreatedAt    time.Time
}

// NewReference creates a validated reference.
func NewReference(tenantID, referrerName string, relationship valueobject.ReferenceRelationship, rating int, comments string, now time.Time) (Reference, error) {
	if tenantID == "" {
		return Reference{}, errors.New("tenant ID is required")
	}
	if referrerName == "" {
		return Reference{}, errors.New("referrer name is required")
	}
	if rating < 1 || rating > 5 {
		return Reference{}, errors.New("rating must be in [1,5]")
	}
	return Reference{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		ReferrerName: referrerName,
		Relationship: relationship,
		Rating:       rating,
		Comments:     comments,
		CreatedAt:    now,
	}, nil
}

func monthsBetween(start, end time.Time) int {
	months := int(end.Sub(start).Hours() / (24 * 30))
	if months < 0 {
		return 0
	}
	return months
}
