package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func existingScore(t *testing.T, overall int) model.TenantScore {
	t.Helper()
	score, err := model.NewTenantScore(
		"tenant-001", overall, nil,
		valueobject.ScoringMethodComprehensive, 45,
		model.ScoreBreakdown{Method: "COMPREHENSIVE", WeightsApplied: 45},
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return score
}

func TestEnsureDefaultScore_Execute(t *testing.T) {
	t.Run("bootstraps the neutral default for unscored tenants", func(t *testing.T) {
		scores := &mockTenantScoreRepository{}
		users := &mockUserRepository{
			findByIDFunc: func(_ context.Context, id string) (model.User, error) {
				return tenantUser(id), nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewEnsureDefaultScoreUseCase(scores, users, publisher)

		resp, err := uc.Execute(context.Background(), "tenant-001")

		require.NoError(t, err)
		assert.Equal(t, 50, resp.OverallScore)
		assert.Equal(t, 575, resp.DisplayScore)
		assert.Equal(t, "COMPREHENSIVE", resp.ScoringMethod)
		assert.Zero(t, resp.WeightsApplied)
		assert.True(t, resp.Defaulted)
		assert.Len(t, resp.Components, len(valueobject.AllComponents()))
		for _, c := range resp.Components {
			assert.Equal(t, "UNAVAILABLE", c.Outcome)
			assert.Nil(t, c.Score)
		}
		require.Len(t, scores.savedScores, 1)

		require.Len(t, publisher.publishedEvents, 1)
		computed, ok := publisher.publishedEvents[0].(event.TenantScoreComputed)
		require.True(t, ok)
		assert.Equal(t, "tenant-001", computed.TenantID)
		assert.Equal(t, 50, computed.OverallScore)
		assert.Zero(t, computed.WeightsApplied)
		assert.True(t, computed.Defaulted)
	})

	t.Run("existing score is returned untouched", func(t *testing.T) {
		existing := existingScore(t, 76)
		scores := &mockTenantScoreRepository{
			latestActiveFunc: func(_ context.Context, _ string) (model.TenantScore, error) {
				return existing, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewEnsureDefaultScoreUseCase(scores, &mockUserRepository{}, publisher)

		resp, err := uc.Execute(context.Background(), "tenant-001")

		require.NoError(t, err)
		assert.Equal(t, 76, resp.OverallScore)
		assert.False(t, resp.Defaulted)
		assert.Empty(t, scores.savedScores)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("unknown tenant is not bootstrapped", func(t *testing.T) {
		scores := &mockTenantScoreRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewEnsureDefaultScoreUseCase(scores, &mockUserRepository{}, publisher)

		_, err := uc.Execute(context.Background(), "ghost")

		assert.ErrorIs(t, err, valueobject.ErrNotFound)
		assert.Empty(t, scores.savedScores)
		assert.Empty(t, publisher.publishedEvents)
	})
}
