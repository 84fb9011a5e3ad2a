package dto

import (
	"time"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// RegisterUserRequest carries the data needed to register a platform user.
type RegisterUserRequest struct {
	ExternalIdentityID string `json:"external_identity_id"`
	Role               string `json:"role"`
	Email              string `json:"email"`
	FullName           string `json:"full_name"`
	MonthlyIncomeCents int64  `json:"monthly_income_cents,omitempty"`
	CreditScore        *int   `json:"credit_score,omitempty"`
}

// UpdateVerificationRequest updates a user's identity verification outcome.
type UpdateVerificationRequest struct {
	UserID            string   `json:"user_id"`
	Status            string   `json:"status"`
	IDMatchConfidence *float64 `json:"id_match_confidence,omitempty"`
}

// CreatePropertyRequest carries the data for a new listing.
type CreatePropertyRequest struct {
	LandlordID       string `json:"landlord_id"`
	Title            string `json:"title"`
	Address          string `json:"address"`
	MonthlyRentCents int64  `json:"monthly_rent_cents"`
	Bedrooms         int    `json:"bedrooms"`
	Bathrooms        int    `json:"bathrooms"`
}

// SubmitApplicationRequest carries a tenant's application for a property.
type SubmitApplicationRequest struct {
	TenantID           string     `json:"tenant_id"`
	PropertyID         string     `json:"property_id"`
	MonthlyIncomeCents int64      `json:"monthly_income_cents"`
	MoveInDate         *time.Time `json:"move_in_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	ReferenceCount     int        `json:"reference_count"`
}

// DecideApplicationRequest records a landlord's decision.
type DecideApplicationRequest struct {
	ApplicationID string     `json:"application_id"`
	Approve       bool       `json:"approve"`
	Reason        string     `json:"reason"`
	LeaseStart    *time.Time `json:"lease_start,omitempty"`
	LeaseEnd      *time.Time `json:"lease_end,omitempty"`
}

// SchedulePaymentRequest schedules a rent payment against a lease.
type SchedulePaymentRequest struct {
	LeaseID     string    `json:"lease_id"`
	TenantID    string    `json:"tenant_id"`
	AmountCents int64     `json:"amount_cents"`
	DueDate     time.Time `json:"due_date"`
}

// SettlePaymentRequest settles a pending payment as paid or failed.
type SettlePaymentRequest struct {
	PaymentID string     `json:"payment_id"`
	Paid      bool       `json:"paid"`
	PaidDate  *time.Time `json:"paid_date,omitempty"`
}

// RecordCreditCheckRequest stores a completed bureau pull supplied by a caller.
type RecordCreditCheckRequest struct {
	TenantID   string    `json:"tenant_id"`
	Bureau     string    `json:"bureau"`
	Score      int       `json:"score"`
	ReportDate time.Time `json:"report_date"`
}

// AddEmploymentRecordRequest adds one job to a tenant's employment history.
type AddEmploymentRecordRequest struct {
	TenantID           string     `json:"tenant_id"`
	Employer           string     `json:"employer"`
	Position           string     `json:"position"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	MonthlyIncomeCents int64      `json:"monthly_income_cents"`
}

// AddRentalHistoryRequest adds one prior tenancy.
type AddRentalHistoryRequest struct {
	TenantID            string    `json:"tenant_id"`
	LandlordName        string    `json:"landlord_name"`
	Address             string    `json:"address"`
	StartDate           time.Time `json:"start_date"`
	EndDate             time.Time `json:"end_date"`
	MonthlyRentCents    int64     `json:"monthly_rent_cents"`
	OnTimePercent       int       `json:"on_time_percent"`
	LeftInGoodCondition bool      `json:"left_in_good_condition"`
	ReasonForLeaving    string    `json:"reason_for_leaving,omitempty"`
}

// AddReferenceRequest adds one reference for a tenant.
type AddReferenceRequest struct {
	TenantID     string `json:"tenant_id"`
	ReferrerName string `json:"referrer_name"`
	Relationship string `json:"relationship"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments,omitempty"`
}

// CalculateScoreRequest triggers a scoring run for a tenant.
type CalculateScoreRequest struct {
	TenantID         string `json:"tenant_id"`
	PropertyID       string `json:"property_id,omitempty"`
	ApplicationID    string `json:"application_id,omitempty"`
	MonthlyRentCents int64  `json:"monthly_rent_cents,omitempty"`
	ScoringMethod    string `json:"scoring_method,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// UserResponse is the external representation of a user.
type UserResponse struct {
	ID                 string    `json:"id"`
	ExternalIdentityID string    `json:"external_identity_id"`
	Role               string    `json:"role"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	VerificationStatus string    `json:"verification_status"`
	MonthlyIncomeCents int64     `json:"monthly_income_cents"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// PropertyResponse is the external representation of a listing.
type PropertyResponse struct {
	ID               string    `json:"id"`
	LandlordID       string    `json:"landlord_id"`
	Title            string    `json:"title"`
	Address          string    `json:"address"`
	MonthlyRentCents int64     `json:"monthly_rent_cents"`
	Bedrooms         int       `json:"bedrooms"`
	Bathrooms        int       `json:"bathrooms"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ApplicationResponse is the external representation of a rental application.
type ApplicationResponse struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenant_id"`
	PropertyID         string     `json:"property_id"`
	MonthlyIncomeCents int64      `json:"monthly_income_cents"`
	MoveInDate         *time.Time `json:"move_in_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	ReferenceCount     int        `json:"reference_count"`
	Status             string     `json:"status"`
	DecisionReason     string     `json:"decision_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// LeaseResponse is the external representation of a lease.
type LeaseResponse struct {
	ID               string    `json:"id"`
	TenantID         string    `json:"tenant_id"`
	PropertyID       string    `json:"property_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	MonthlyRentCents int64     `json:"monthly_rent_cents"`
	Status           string    `json:"status"`
}

// DecisionResponse is the outcome of a landlord decision, including the
// lease created on approval.
type DecisionResponse struct {
	Application ApplicationResponse `json:"application"`
	Lease       *LeaseResponse      `json:"lease,omitempty"`
}

// PaymentResponse is the external representation of a rent payment.
type PaymentResponse struct {
	ID          string     `json:"id"`
	LeaseID     string     `json:"lease_id"`
	TenantID    string     `json:"tenant_id"`
	AmountCents int64      `json:"amount_cents"`
	DueDate     time.Time  `json:"due_date"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
	Status      string     `json:"status"`
}

// CreditCheckResponse is the external representation of a bureau pull.
type CreditCheckResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Bureau     string    `json:"bureau"`
	Score      int       `json:"score"`
	Status     string    `json:"status"`
	ReportDate time.Time `json:"report_date"`
}

// ComponentScoreResponse is one component's contribution to a score.
type ComponentScoreResponse struct {
	Component string `json:"component"`
	Outcome   string `json:"outcome"`
	Score     *int   `json:"score,omitempty"`
	Weight    int    `json:"weight"`
	Reason    string `json:"reason,omitempty"`
}

// TenantScoreResponse is the external representation of a computed score.
type TenantScoreResponse struct {
	ID             string                   `json:"id"`
	TenantID       string                   `json:"tenant_id"`
	OverallScore   int                      `json:"overall_score"`
	DisplayScore   int                      `json:"display_score"`
	ScoringMethod  string                   `json:"scoring_method"`
	WeightsApplied int                      `json:"weights_applied"`
	Defaulted      bool                     `json:"defaulted"`
	Active         bool                     `json:"active"`
	Components     []ComponentScoreResponse `json:"components"`
	CreatedAt      time.Time                `json:"created_at"`
}

// PropertyRecommendationResponse pairs a listing with the reason it matches.
type PropertyRecommendationResponse struct {
	Property PropertyResponse `json:"property"`
	Reason   string           `json:"reason"`
}
