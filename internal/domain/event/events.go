package event

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is implemented by every event the service publishes.
type DomainEvent interface {
	EventID() string
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
}

// Base carries the common envelope fields. Fields are exported so the whole
// event serialises to JSON for the Kafka payload.
type Base struct {
	ID        string    `json:"event_id"`
	Type      string    `json:"event_type"`
	Aggregate string    `json:"aggregate_id"`
	Kind      string    `json:"aggregate_type"`
	At        time.Time `json:"occurred_at"`
}

func newBase(eventType, aggregateID, aggregateType string) Base {
	return Base{
		ID:        uuid.New().String(),
		Type:      eventType,
		Aggregate: aggregateID,
		Kind:      aggregateType,
		At:        time.Now().UTC(),
	}
}

func (b Base) EventID() string       { return b.ID }
func (b Base) EventType() string     { return b.Type }
func (b Base) AggregateID() string   { return b.Aggregate }
func (b Base) AggregateType() string { return b.Kind }
func (b Base) OccurredAt() time.Time { return b.At }

// ---------------------------------------------------------------------------
// Application events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a tenant applies for a property.
type ApplicationSubmitted struct {
	Base
	TenantID      string `json:"tenant_id"`
	PropertyID    string `json:"property_id"`
	MonthlyIncome int64  `json:"monthly_income_cents"`
}

func NewApplicationSubmitted(applicationID, tenantID, propertyID string, monthlyIncome int64) ApplicationSubmitted {
	return ApplicationSubmitted{
		Base:          newBase("screening.application.submitted", applicationID, "Application"),
		TenantID:      tenantID,
		PropertyID:    propertyID,
		MonthlyIncome: monthlyIncome,
	}
}

// ApplicationDecided is raised when a landlord approves or rejects an application.
type ApplicationDecided struct {
	Base
	TenantID   string `json:"tenant_id"`
	PropertyID string `json:"property_id"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

func NewApplicationDecided(applicationID, tenantID, propertyID, status, reason string) ApplicationDecided {
	return ApplicationDecided{
		Base:       newBase("screening.application.decided", applicationID, "Application"),
		TenantID:   tenantID,
		PropertyID: propertyID,
		Status:     status,
		Reason:     reason,
	}
}

// ---------------------------------------------------------------------------
// Lease and payment events
// ---------------------------------------------------------------------------

// LeaseCreated is raised when an approved application produces a lease.
type LeaseCreated struct {
	Base
	TenantID    string    `json:"tenant_id"`
	PropertyID  string    `json:"property_id"`
	MonthlyRent int64     `json:"monthly_rent_cents"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

func NewLeaseCreated(leaseID, tenantID, propertyID string, monthlyRent int64, start, end time.Time) LeaseCreated {
	return LeaseCreated{
		Base:        newBase("screening.lease.created", leaseID, "Lease"),
		TenantID:    tenantID,
		PropertyID:  propertyID,
		MonthlyRent: monthlyRent,
		StartDate:   start,
		EndDate:     end,
	}
}

// PaymentRecorded is raised when a rent payment settles (paid or failed).
type PaymentRecorded struct {
	Base
	TenantID string     `json:"tenant_id"`
	LeaseID  string     `json:"lease_id"`
	Amount   int64      `json:"amount_cents"`
	Status   string     `json:"status"`
	DueDate  time.Time  `json:"due_date"`
	PaidDate *time.Time `json:"paid_date,omitempty"`
}

func NewPaymentRecorded(paymentID, tenantID, leaseID string, amount int64, status string, due time.Time, paid *time.Time) PaymentRecorded {
	return PaymentRecorded{
		Base:     newBase("screening.payment.recorded", paymentID, "Payment"),
		TenantID: tenantID,
		LeaseID:  leaseID,
		Amount:   amount,
		Status:   status,
		DueDate:  due,
		PaidDate: paid,
	}
}

// ---------------------------------------------------------------------------
// Scoring events
// ---------------------------------------------------------------------------

// TenantScoreComputed is raised when the aggregator persists a new score.
type TenantScoreComputed struct {
	Base
	TenantID       string `json:"tenant_id"`
	OverallScore   int    `json:"overall_score"`
	ScoringMethod  string `json:"scoring_method"`
	WeightsApplied int    `json:"weights_applied"`
	Defaulted      bool   `json:"defaulted"`
}

func NewTenantScoreComputed(scoreID, tenantID string, overall int, method string, weightsApplied int) TenantScoreComputed {
	return TenantScoreComputed{
		Base:           newBase("screening.tenant_score.computed", scoreID, "TenantScore"),
		TenantID:       tenantID,
		OverallScore:   overall,
		ScoringMethod:  method,
		WeightsApplied: weightsApplied,
		Defaulted:      weightsApplied == 0,
	}
}
