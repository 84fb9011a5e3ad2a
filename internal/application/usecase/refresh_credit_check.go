package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// RefreshCreditCheckUseCase pulls a fresh score from the credit bureau and
// stores it as the tenant's latest completed check.
type RefreshCreditCheckUseCase struct {
	creditChecks port.CreditCheckRepository
	users        port.UserRepository
	bureau       port.CreditBureauClient
}

// NewRefreshCreditCheckUseCase wires dependencies.
func NewRefreshCreditCheckUseCase(
	creditChecks port.CreditCheckRepository,
	users port.UserRepository,
	bureau port.CreditBureauClient,
) *RefreshCreditCheckUseCase {
	return &RefreshCreditCheckUseCase{creditChecks: creditChecks, users: users, bureau: bureau}
}

// Execute pulls and persists a new check for the tenant.
func (uc *RefreshCreditCheckUseCase) Execute(ctx context.Context, tenantID string) (dto.CreditCheckResponse, error) {
	if _, err := uc.users.FindByID(ctx, tenantID); err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("tenant %s: %w", tenantID, err)
	}

	bureau, score, err := uc.bureau.PullScore(ctx, tenantID)
	if err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("pull credit score: %w", err)
	}

	now := time.Now().UTC()
	check, err := model.NewCreditCheck(tenantID, bureau, score, now, now)
	if err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("create credit check: %w", err)
	}

	if err := uc.creditChecks.Save(ctx, check); err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("save credit check: %w", err)
	}
	return toCreditCheckResponse(check), nil
}
