package usecase_test

import (
	"context"
	"fmt"

	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// --- Mock implementations ---

func notFound(kind string) error {
	return fmt.Errorf("%s: %w", kind, valueobject.ErrNotFound)
}

type mockUserRepository struct {
	saveFunc           func(ctx context.Context, u model.User) error
	findByIDFunc       func(ctx context.Context, id string) (model.User, error)
	findByExternalFunc func(ctx context.Context, externalID string) (model.User, error)
	savedUsers         []model.User
}

func (m *mockUserRepository) Save(ctx context.Context, u model.User) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, u)
	}
	m.savedUsers = append(m.savedUsers, u)
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.User{}, notFound("user")
}

func (m *mockUserRepository) FindByExternalID(ctx context.Context, externalID string) (model.User, error) {
	if m.findByExternalFunc != nil {
		return m.findByExternalFunc(ctx, externalID)
	}
	return model.User{}, notFound("user")
}

type mockPropertyRepository struct {
	saveFunc        func(ctx context.Context, p model.Property) error
	findByIDFunc    func(ctx context.Context, id string) (model.Property, error)
	byStatusFunc    func(ctx context.Context, status string) ([]model.Property, error)
	byLandlordFunc  func(ctx context.Context, landlordID string) ([]model.Property, error)
	savedProperties []model.Property
}

func (m *mockPropertyRepository) Save(ctx context.Context, p model.Property) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	m.savedProperties = append(m.savedProperties, p)
	return nil
}

func (m *mockPropertyRepository) FindByID(ctx context.Context, id string) (model.Property, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Property{}, notFound("property")
}

func (m *mockPropertyRepository) FindByStatus(ctx context.Context, status string) ([]model.Property, error) {
	if m.byStatusFunc != nil {
		return m.byStatusFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockPropertyRepository) FindByLandlordID(ctx context.Context, landlordID string) ([]model.Property, error) {
	if m.byLandlordFunc != nil {
		return m.byLandlordFunc(ctx, landlordID)
	}
	return nil, nil
}

type mockApplicationRepository struct {
	saveFunc     func(ctx context.Context, a model.Application) error
	findByIDFunc func(ctx context.Context, id string) (model.Application, error)
	savedApps    []model.Application
}

func (m *mockApplicationRepository) Save(ctx context.Context, a model.Application) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, a)
	}
	m.savedApps = append(m.savedApps, a)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id string) (model.Application, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Application{}, notFound("application")
}

func (m *mockApplicationRepository) FindByTenantID(_ context.Context, _ string) ([]model.Application, error) {
	return nil, nil
}

type mockLeaseRepository struct {
	saveFunc     func(ctx context.Context, l model.Lease) error
	findByIDFunc func(ctx context.Context, id string) (model.Lease, error)
	savedLeases  []model.Lease
}

func (m *mockLeaseRepository) Save(ctx context.Context, l model.Lease) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, l)
	}
	m.savedLeases = append(m.savedLeases, l)
	return nil
}

func (m *mockLeaseRepository) FindByID(ctx context.Context, id string) (model.Lease, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Lease{}, notFound("lease")
}

func (m *mockLeaseRepository) FindByTenantID(_ context.Context, _ string) ([]model.Lease, error) {
	return nil, nil
}

type mockPaymentRepository struct {
	saveFunc      func(ctx context.Context, p model.Payment) error
	findByIDFunc  func(ctx context.Context, id string) (model.Payment, error)
	byTenantFunc  func(ctx context.Context, tenantID string) ([]model.Payment, error)
	savedPayments []model.Payment
}

func (m *mockPaymentRepository) Save(ctx context.Context, p model.Payment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	m.savedPayments = append(m.savedPayments, p)
	return nil
}

func (m *mockPaymentRepository) FindByID(ctx context.Context, id string) (model.Payment, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Payment{}, notFound("payment")
}

func (m *mockPaymentRepository) FindByTenantID(ctx context.Context, tenantID string) ([]model.Payment, error) {
	if m.byTenantFunc != nil {
		return m.byTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockTenantScoreRepository struct {
	saveSupersedingFunc func(ctx context.Context, s model.TenantScore) error
	saveFunc            func(ctx context.Context, s model.TenantScore) error
	deactivateFunc      func(ctx context.Context, scoreID string) error
	findByIDFunc        func(ctx context.Context, id string) (model.TenantScore, error)
	latestActiveFunc    func(ctx context.Context, tenantID string) (model.TenantScore, error)
	historyFunc         func(ctx context.Context, tenantID string) ([]model.TenantScore, error)
	savedScores         []model.TenantScore
}

func (m *mockTenantScoreRepository) SaveSuperseding(ctx context.Context, s model.TenantScore) error {
	if m.saveSupersedingFunc != nil {
		return m.saveSupersedingFunc(ctx, s)
	}
	m.savedScores = append(m.savedScores, s)
	return nil
}

func (m *mockTenantScoreRepository) Save(ctx context.Context, s model.TenantScore) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, s)
	}
	m.savedScores = append(m.savedScores, s)
	return nil
}

func (m *mockTenantScoreRepository) Deactivate(ctx context.Context, scoreID string) error {
	if m.deactivateFunc != nil {
		return m.deactivateFunc(ctx, scoreID)
	}
	return nil
}

func (m *mockTenantScoreRepository) FindByID(ctx context.Context, id string) (model.TenantScore, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.TenantScore{}, notFound("score")
}

func (m *mockTenantScoreRepository) FindLatestActive(ctx context.Context, tenantID string) (model.TenantScore, error) {
	if m.latestActiveFunc != nil {
		return m.latestActiveFunc(ctx, tenantID)
	}
	return model.TenantScore{}, notFound("score")
}

func (m *mockTenantScoreRepository) FindHistory(ctx context.Context, tenantID string) ([]model.TenantScore, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockCreditCheckRepository struct {
	saveFunc    func(ctx context.Context, c model.CreditCheck) error
	latestFunc  func(ctx context.Context, tenantID string) (model.CreditCheck, error)
	savedChecks []model.CreditCheck
}

func (m *mockCreditCheckRepository) Save(ctx context.Context, c model.CreditCheck) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	m.savedChecks = append(m.savedChecks, c)
	return nil
}

func (m *mockCreditCheckRepository) FindLatestCompleted(ctx context.Context, tenantID string) (model.CreditCheck, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, tenantID)
	}
	return model.CreditCheck{}, notFound("credit check")
}

func (m *mockCreditCheckRepository) FindByTenantID(_ context.Context, _ string) ([]model.CreditCheck, error) {
	return nil, nil
}

type mockEmploymentRepository struct {
	byTenantFunc func(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error)
	savedRecords []model.EmploymentRecord
}

func (m *mockEmploymentRepository) Save(_ context.Context, e model.EmploymentRecord) error {
	m.savedRecords = append(m.savedRecords, e)
	return nil
}

func (m *mockEmploymentRepository) FindByTenantID(ctx context.Context, tenantID string) ([]model.EmploymentRecord, error) {
	if m.byTenantFunc != nil {
		return m.byTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockRentalHistoryRepository struct {
	byTenantFunc func(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error)
	savedRecords []model.RentalHistoryRecord
}

func (m *mockRentalHistoryRepository) Save(_ context.Context, r model.RentalHistoryRecord) error {
	m.savedRecords = append(m.savedRecords, r)
	return nil
}

func (m *mockRentalHistoryRepository) FindByTenantID(ctx context.Context, tenantID string) ([]model.RentalHistoryRecord, error) {
	if m.byTenantFunc != nil {
		return m.byTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockReferenceRepository struct {
	byTenantFunc func(ctx context.Context, tenantID string) ([]model.Reference, error)
	savedRefs    []model.Reference
}

func (m *mockReferenceRepository) Save(_ context.Context, r model.Reference) error {
	m.savedRefs = append(m.savedRefs, r)
	return nil
}

func (m *mockReferenceRepository) FindByTenantID(ctx context.Context, tenantID string) ([]model.Reference, error) {
	if m.byTenantFunc != nil {
		return m.byTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCreditBureauClient struct {
	pullScoreFunc func(ctx context.Context, tenantID string) (string, int, error)
}

func (m *mockCreditBureauClient) PullScore(ctx context.Context, tenantID string) (string, int, error) {
	if m.pullScoreFunc != nil {
		return m.pullScoreFunc(ctx, tenantID)
	}
	return "equifax", 720, nil
}
