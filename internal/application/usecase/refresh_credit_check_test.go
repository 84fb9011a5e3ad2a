package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func TestRefreshCreditCheck_Execute(t *testing.T) {
	t.Run("pulls and stores a fresh check", func(t *testing.T) {
		checks := &mockCreditCheckRepository{}
		users := &mockUserRepository{
			findByIDFunc: func(_ context.Context, id string) (model.User, error) {
				return tenantUser(id), nil
			},
		}
		bureau := &mockCreditBureauClient{
			pullScoreFunc: func(_ context.Context, _ string) (string, int, error) {
				return "transunion", 685, nil
			},
		}
		uc := usecase.NewRefreshCreditCheckUseCase(checks, users, bureau)

		resp, err := uc.Execute(context.Background(), "tenant-001")

		require.NoError(t, err)
		assert.Equal(t, "transunion", resp.Bureau)
		assert.Equal(t, 685, resp.Score)
		assert.Equal(t, "COMPLETED", resp.Status)
		require.Len(t, checks.savedChecks, 1)
	})

	t.Run("bureau failure surfaces without a write", func(t *testing.T) {
		checks := &mockCreditCheckRepository{}
		users := &mockUserRepository{
			findByIDFunc: func(_ context.Context, id string) (model.User, error) {
				return tenantUser(id), nil
			},
		}
		bureau := &mockCreditBureauClient{
			pullScoreFunc: func(_ context.Context, _ string) (string, int, error) {
				return "", 0, fmt.Errorf("bureau unreachable")
			},
		}
		uc := usecase.NewRefreshCreditCheckUseCase(checks, users, bureau)

		_, err := uc.Execute(context.Background(), "tenant-001")

		assert.ErrorContains(t, err, "pull credit score")
		assert.Empty(t, checks.savedChecks)
	})

	t.Run("unknown tenant fails fast", func(t *testing.T) {
		uc := usecase.NewRefreshCreditCheckUseCase(&mockCreditCheckRepository{}, &mockUserRepository{}, &mockCreditBureauClient{})

		_, err := uc.Execute(context.Background(), "ghost")

		assert.ErrorIs(t, err, valueobject.ErrNotFound)
	})
}
