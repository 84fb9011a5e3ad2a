package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// --- Mock repositories ---

type mockUserRepo struct {
	findByIDFunc func(ctx context.Context, id string) (model.User, error)
}

func (m *mockUserRepo) Save(context.Context, model.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.User{}, fmt.Errorf("user %s: %w", id, valueobject.ErrNotFound)
}
func (m *mockUserRepo) FindByExternalID(ctx context.Context, id string) (model.User, error) {
	return model.User{}, fmt.Errorf("user %s: %w", id, valueobject.ErrNotFound)
}

type mockPropertyRepo struct {
	findByIDFunc func(ctx context.Context, id string) (model.Property, error)
}

func (m *mockPropertyRepo) Save(context.Context, model.Property) error { return nil }
func (m *mockPropertyRepo) FindByID(ctx context.Context, id string) (model.Property, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Property{}, fmt.Errorf("property %s: %w", id, valueobject.ErrNotFound)
}
func (m *mockPropertyRepo) FindByStatus(context.Context, string) ([]model.Property, error) {
	return nil, nil
}
func (m *mockPropertyRepo) FindByLandlordID(context.Context, string) ([]model.Property, error) {
	return nil, nil
}

type mockApplicationRepo struct {
	findByIDFunc func(ctx context.Context, id string) (model.Application, error)
}

func (m *mockApplicationRepo) Save(context.Context, model.Application) error { return nil }
func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (model.Application, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Application{}, fmt.Errorf("application %s: %w", id, valueobject.ErrNotFound)
}
func (m *mockApplicationRepo) FindByTenantID(context.Context, string) ([]model.Application, error) {
	return nil, nil
}

type mockPaymentRepo struct {
	findByTenantIDFunc func(ctx context.Context, tenantID string) ([]model.Payment, error)
}

func (m *mockPaymentRepo) Save(context.Context, model.Payment) error { return nil }
func (m *mockPaymentRepo) FindByID(ctx context.Context, id string) (model.Payment, error) {
	return model.Payment{}, fmt.Errorf("payment %s: %w", id, valueobject.ErrNotFound)
}
func (m *mockPaymentRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Payment, error) {
	if m.findByTenantIDFunc != nil {
		return m.findByTenantIDFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockCreditCheckRepo struct {
	findLatestFunc func(ctx context.Context, tenantID string) (model.CreditCheck, error)
}

func (m *mockCreditCheckRepo) Save(context.Context, model.CreditCheck) error { return nil }
func (m *mockCreditCheckRepo) FindLatestCompleted(ctx context.Context, tenantID string) (model.CreditCheck, error) {
	if m.findLatestFunc != nil {
		return m.findLatestFunc(ctx, tenantID)
	}
	return model.CreditCheck{}, fmt.Errorf("credit check for %s: %w", tenantID, valueobject.ErrNotFound)
}
func (m *mockCreditCheckRepo) FindByTenantID(context.Context, string) ([]model.CreditCheck, error) {
	return nil, nil
}

type mockEmploymentRepo struct {
	findByTenantIDFunc func(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error)
}

func (m *mockEmploymentRepo) Save(context.Context, model.EmploymentRecord) error { return nil }
func (m *mockEmploymentRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error) {
	if m.findByTenantIDFunc != nil {
		return m.findByTenantIDFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockRentalHistoryRepo struct {
	findByTenantIDFunc func(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error)
}

func (m *mockRentalHistoryRepo) Save(context.Context, model.RentalHistoryRecord) error { return nil }
func (m *mockRentalHistoryRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error) {
	if m.findByTenantIDFunc != nil {
		return m.findByTenantIDFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockReferenceRepo struct {
	findByTenantIDFunc func(ctx context.Context, tenantID string) ([]model.Reference, error)
}

func (m *mockReferenceRepo) Save(context.Context, model.Reference) error { return nil }
func (m *mockReferenceRepo) FindByTenantID(ctx context.Context, tenantID string) ([]model.Reference, error) {
	if m.findByTenantIDFunc != nil {
		return m.findByTenantIDFunc(ctx, tenantID)
	}
	return nil, nil
}

// --- Engine builder ---

type engineMocks struct {
	users         *mockUserRepo
	properties    *mockPropertyRepo
	applications  *mockApplicationRepo
	payments      *mockPaymentRepo
	creditChecks  *mockCreditCheckRepo
	employment    *mockEmploymentRepo
	rentalHistory *mockRentalHistoryRepo
	references    *mockReferenceRepo
}

// scoringNow is the fixed clock used across scoring tests.
var scoringNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() (*ScoringEngine, *engineMocks) {
	m := &engineMocks{
		users:         &mockUserRepo{},
		properties:    &mockPropertyRepo{},
		applications:  &mockApplicationRepo{},
		payments:      &mockPaymentRepo{},
		creditChecks:  &mockCreditCheckRepo{},
		employment:    &mockEmploymentRepo{},
		rentalHistory: &mockRentalHistoryRepo{},
		references:    &mockReferenceRepo{},
	}
	engine := NewScoringEngine(
		m.users, m.properties, m.applications, m.payments,
		m.creditChecks, m.employment, m.rentalHistory, m.references,
		slog.Default(),
	).WithClock(func() time.Time { return scoringNow })
	return engine, m
}
