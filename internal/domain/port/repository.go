package port

import (
	"context"

	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
//
// Lookup contract: Find* returns valueobject.ErrNotFound (wrapped) when the
// entity does not exist; list methods return an empty slice, never an error,
// for legitimate absence.
// ---------------------------------------------------------------------------

// UserRepository persists and retrieves platform users.
type UserRepository interface {
	Save(ctx context.Context, u model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByExternalID(ctx context.Context, externalID string) (model.User, error)
}

// PropertyRepository persists and retrieves listings.
type PropertyRepository interface {
	Save(ctx context.Context, p model.Property) error
	FindByID(ctx context.Context, id string) (model.Property, error)
	FindByStatus(ctx context.Context, status string) ([]model.Property, error)
	FindByLandlordID(ctx context.Context, landlordID string) ([]model.Property, error)
}

// ApplicationRepository persists and retrieves rental applications.
type ApplicationRepository interface {
	Save(ctx context.Context, a model.Application) error
	FindByID(ctx context.Context, id string) (model.Application, error)
	FindByTenantID(ctx context.Context, tenantID string) ([]model.Application, error)
}

// LeaseRepository persists and retrieves leases.
type LeaseRepository interface {
	Save(ctx context.Context, l model.Lease) error
	FindByID(ctx context.Context, id string) (model.Lease, error)
	FindByTenantID(ctx context.Context, tenantID string) ([]model.Lease, error)
}

// PaymentRepository persists and retrieves rent payments.
type PaymentRepository interface {
	Save(ctx context.Context, p model.Payment) error
	FindByID(ctx context.Context, id string) (model.Payment, error)
	FindByTenantID(ctx context.Context, tenantID string) ([]model.Payment, error)
}

// TenantScoreRepository persists and retrieves computed scores.
// SaveSuperseding inserts the new score and deactivates the tenant's previous
// active scores in one transaction.
type TenantScoreRepository interface {
	SaveSuperseding(ctx context.Context, s model.TenantScore) error
	Save(ctx context.Context, s model.TenantScore) error
	Deactivate(ctx context.Context, scoreID string) error
	FindByID(ctx context.Context, id string) (model.TenantScore, error)
	FindLatestActive(ctx context.Context, tenantID string) (model.TenantScore, error)
	FindHistory(ctx context.Context, tenantID string) ([]model.TenantScore, error)
}

// CreditCheckRepository persists and retrieves credit bureau pulls.
type CreditCheckRepository interface {
	Save(ctx context.Context, c model.CreditCheck) error
	FindLatestCompleted(ctx context.Context, tenantID string) (model.CreditCheck, error)
	FindByTenantID(ctx context.Context, tenantID string) ([]model.CreditCheck, error)
}

// EmploymentRepository persists and retrieves employment records.
type EmploymentRepository interface {
	Save(ctx context.Context, e model.EmploymentRecord) error
	FindByTenantID(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error)
}

// RentalHistoryRepository persists and retrieves prior tenancies.
type RentalHistoryRepository interface {
	Save(ctx context.Context, r model.RentalHistoryRecord) error
	FindByTenantID(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error)
}

// ReferenceRepository persists and retrieves tenant references.
type ReferenceRepository interface {
	Save(ctx context.Context, r model.Reference) error
	FindByTenantID(ctx context.Context, tenantID string) ([]model.Reference, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditBureauClient pulls credit reports from an external bureau.
type CreditBureauClient interface {
	PullScore(ctx context.Context, tenantID string) (bureau string, score int, err error)
}
