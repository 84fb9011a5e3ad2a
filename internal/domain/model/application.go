package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Application aggregate root
// ---------------------------------------------------------------------------

// Application is an immutable aggregate. Every mutation returns a new copy.
type Application struct {
	id             string
	tenantID       string
	propertyID     string
	monthlyIncome  int64 // cents, declared by the applicant
	moveInDate     *time.Time
	notes          string
	referenceCount int
	status         valueobject.ApplicationStatus
	decisionReason string
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// NewApplication creates a brand-new application in PENDING status.
func NewApplication(
	tenantID, propertyID string,
	monthlyIncome int64,
	moveInDate *time.Time,
	notes string,
	referenceCount int,
	now time.Time,
) (Application, error) {
	if tenantID == "" {
		return Application{}, errors.New("tenant ID is required")
	}
	if propertyID == "" {
		return Application{}, errors.New("property ID is required")
	}
	if monthlyIncome < 0 {
		return Application{}, errors.New("declared income must not be negative")
	}
	if referenceCount < 0 {
		return Application{}, errors.New("reference count must not be negative")
	}

	id := uuid.New().String()
	app := Application{
		id:             id,
		tenantID:       tenantID,
		propertyID:     propertyID,
		monthlyIncome:  monthlyIncome,
		moveInDate:     moveInDate,
		notes:          notes,
		referenceCount: referenceCount,
		status:         valueobject.ApplicationStatusPending,
		createdAt:      now,
		updatedAt:      now,
	}

	app.domainEvents = append(app.domainEvents,
		event.NewApplicationSubmitted(id, tenantID, propertyID, monthlyIncome))
	return app, nil
}

// ReconstructApplication rebuilds an aggregate from persistence without side-effects.
func ReconstructApplication(
	id, tenantID, propertyID string,
	monthlyIncome int64,
	moveInDate *time.Time,
	notes string,
	referenceCount int,
	status valueobject.ApplicationStatus,
	decisionReason string,
	createdAt, updatedAt time.Time,
) Application {
	return Application{
		id:             id,
		tenantID:       tenantID,
		propertyID:     propertyID,
		monthlyIncome:  monthlyIncome,
		moveInDate:     moveInDate,
		notes:          notes,
		referenceCount: referenceCount,
		status:         status,
		decisionReason: decisionReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Approve transitions PENDING -> APPROVED and emits ApplicationDecided.
func (a Application) Approve(reason string, now time.Time) (Application, error) {
	if !a.status.Equal(valueobject.ApplicationStatusPending) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDecided(
		a.id, a.tenantID, a.propertyID, valueobject.ApplicationStatusApproved.String(), reason,
	))
	return next, nil
}

// Reject transitions PENDING -> REJECTED and emits ApplicationDecided.
func (a Application) Reject(reason string, now time.Time) (Application, error) {
	if !a.status.Equal(valueobject.ApplicationStatusPending) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusRejected
	next.decisionReason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDecided(
		a.id, a.tenantID, a.propertyID, valueobject.ApplicationStatusRejected.String(), reason,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Application) ID() string                            { return a.id }
func (a Application) TenantID() string                      { return a.tenantID }
func (a Application) PropertyID() string                    { return a.propertyID }
func (a Application) MonthlyIncome() int64                  { return a.monthlyIncome }
func (a Application) MoveInDate() *time.Time                { return a.moveInDate }
func (a Application) Notes() string                         { return a.notes }
func (a Application) ReferenceCount() int                   { return a.referenceCount }
func (a Application) Status() valueobject.ApplicationStatus { return a.status }
func (a Application) DecisionReason() string                { return a.decisionReason }
func (a Application) CreatedAt() time.Time                  { return a.createdAt }
func (a Application) UpdatedAt() time.Time                  { return a.updatedAt }
func (a Application) DomainEvents() []event.DomainEvent     { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a Application) ClearEvents() Application {
	next := a
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
