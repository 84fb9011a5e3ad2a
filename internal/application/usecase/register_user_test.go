package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/model"
)

func TestRegisterUser_Execute(t *testing.T) {
	t.Run("registers a new tenant", func(t *testing.T) {
		users := &mockUserRepository{}
		uc := usecase.NewRegisterUserUseCase(users)

		resp, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
			ExternalIdentityID: "auth0|abc123",
			Role:               "TENANT",
			Email:              "casey@example.com",
			FullName:           "Casey Nguyen",
			MonthlyIncomeCents: 450000,
		})

		require.NoError(t, err)
		assert.Equal(t, "TENANT", resp.Role)
		assert.Equal(t, "UNVERIFIED", resp.VerificationStatus)
		assert.Equal(t, int64(450000), resp.MonthlyIncomeCents)
		assert.True(t, resp.Active)
		require.Len(t, users.savedUsers, 1)
	})

	t.Run("is idempotent on the external identity", func(t *testing.T) {
		existing := tenantUser("tenant-001")
		users := &mockUserRepository{
			findByExternalFunc: func(_ context.Context, _ string) (model.User, error) {
				return existing, nil
			},
		}
		uc := usecase.NewRegisterUserUseCase(users)

		resp, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
			ExternalIdentityID: existing.ExternalIdentityID,
			Role:               "TENANT",
			Email:              existing.Email,
		})

		require.NoError(t, err)
		assert.Equal(t, existing.ID, resp.ID)
		assert.Empty(t, users.savedUsers)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		uc := usecase.NewRegisterUserUseCase(&mockUserRepository{})

		_, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
			ExternalIdentityID: "auth0|abc123",
			Role:               "ADMIN",
			Email:              "casey@example.com",
		})

		assert.Error(t, err)
	})

	t.Run("rejects self-reported scores off the bureau scale", func(t *testing.T) {
		uc := usecase.NewRegisterUserUseCase(&mockUserRepository{})
		badScore := 250

		_, err := uc.Execute(context.Background(), dto.RegisterUserRequest{
			ExternalIdentityID: "auth0|abc123",
			Role:               "TENANT",
			Email:              "casey@example.com",
			CreditScore:        &badScore,
		})

		assert.ErrorContains(t, err, "300-900")
	})
}
