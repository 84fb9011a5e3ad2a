package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

type scoringFixture struct {
	users         *mockUserRepository
	properties    *mockPropertyRepository
	applications  *mockApplicationRepository
	payments      *mockPaymentRepository
	creditChecks  *mockCreditCheckRepository
	employment    *mockEmploymentRepository
	rentalHistory *mockRentalHistoryRepository
	references    *mockReferenceRepository
	scores        *mockTenantScoreRepository
	publisher     *mockEventPublisher
}

func newScoringFixture() *scoringFixture {
	return &scoringFixture{
		users:         &mockUserRepository{},
		properties:    &mockPropertyRepository{},
		applications:  &mockApplicationRepository{},
		payments:      &mockPaymentRepository{},
		creditChecks:  &mockCreditCheckRepository{},
		employment:    &mockEmploymentRepository{},
		rentalHistory: &mockRentalHistoryRepository{},
		references:    &mockReferenceRepository{},
		scores:        &mockTenantScoreRepository{},
		publisher:     &mockEventPublisher{},
	}
}

func (f *scoringFixture) engine() *service.ScoringEngine {
	return service.NewScoringEngine(
		f.users, f.properties, f.applications, f.payments,
		f.creditChecks, f.employment, f.rentalHistory, f.references,
		slog.Default(),
	)
}

func TestCalculateTenantScore_Execute(t *testing.T) {
	t.Run("persists a superseding score and publishes the event", func(t *testing.T) {
		f := newScoringFixture()
		f.creditChecks.latestFunc = func(_ context.Context, _ string) (model.CreditCheck, error) {
			return model.CreditCheck{Score: 732, Status: valueobject.CreditCheckCompleted}, nil
		}
		f.users.findByIDFunc = func(_ context.Context, id string) (model.User, error) {
			u := tenantUser(id)
			u.MonthlyIncome = 450000
			return u, nil
		}
		uc := usecase.NewCalculateTenantScoreUseCase(f.engine(), f.scores, f.publisher)

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{
			TenantID:         "tenant-001",
			MonthlyRentCents: 150000,
		})

		require.NoError(t, err)
		assert.Equal(t, "COMPREHENSIVE", resp.ScoringMethod)
		assert.False(t, resp.Defaulted)
		assert.Positive(t, resp.WeightsApplied)
		assert.True(t, resp.Active)
		assert.Len(t, resp.Components, len(valueobject.AllComponents()))

		require.Len(t, f.scores.savedScores, 1)
		saved := f.scores.savedScores[0]
		assert.Equal(t, resp.OverallScore, saved.OverallScore())

		require.Len(t, f.publisher.publishedEvents, 1)
		computed, ok := f.publisher.publishedEvents[0].(event.TenantScoreComputed)
		require.True(t, ok)
		assert.Equal(t, resp.OverallScore, computed.OverallScore)
		assert.False(t, computed.Defaulted)
	})

	t.Run("tenant with no data still persists the neutral-backed score", func(t *testing.T) {
		f := newScoringFixture()
		uc := usecase.NewCalculateTenantScoreUseCase(f.engine(), f.scores, f.publisher)

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{TenantID: "tenant-001"})

		require.NoError(t, err)
		// Only the eviction component computes without any records.
		assert.Equal(t, 70, resp.OverallScore)
		require.Len(t, f.scores.savedScores, 1)
	})

	t.Run("requested method is honored", func(t *testing.T) {
		f := newScoringFixture()
		f.creditChecks.latestFunc = func(_ context.Context, _ string) (model.CreditCheck, error) {
			return model.CreditCheck{Score: 720, Status: valueobject.CreditCheckCompleted}, nil
		}
		uc := usecase.NewCalculateTenantScoreUseCase(f.engine(), f.scores, f.publisher)

		resp, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{
			TenantID:      "tenant-001",
			ScoringMethod: "CREDIT_ONLY",
		})

		require.NoError(t, err)
		assert.Equal(t, "CREDIT_ONLY", resp.ScoringMethod)
		assert.Equal(t, 70, resp.OverallScore)
		assert.Equal(t, 100, resp.WeightsApplied)
	})

	t.Run("missing tenant ID fails before any write", func(t *testing.T) {
		f := newScoringFixture()
		uc := usecase.NewCalculateTenantScoreUseCase(f.engine(), f.scores, f.publisher)

		_, err := uc.Execute(context.Background(), dto.CalculateScoreRequest{})

		assert.Error(t, err)
		assert.Empty(t, f.scores.savedScores)
	})
}
