package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// AddRentalHistoryUseCase records one prior tenancy for a tenant.
type AddRentalHistoryUseCase struct {
	rentalHistory port.RentalHistoryRepository
	users         port.UserRepository
}

// NewAddRentalHistoryUseCase wires dependencies.
func NewAddRentalHistoryUseCase(rentalHistory port.RentalHistoryRepository, users port.UserRepository) *AddRentalHistoryUseCase {
	return &AddRentalHistoryUseCase{rentalHistory: rentalHistory, users: users}
}

// Execute validates the tenant and persists the tenancy.
func (uc *AddRentalHistoryUseCase) Execute(ctx context.Context, req dto.AddRentalHistoryRequest) (string, error) {
	if _, err := uc.users.FindByID(ctx, req.TenantID); err != nil {
		return "", fmt.Errorf("tenant %s: %w", req.TenantID, err)
	}

	rec, err := model.NewRentalHistoryRecord(
		req.TenantID, req.LandlordName, req.Address,
		req.StartDate, req.EndDate,
		req.MonthlyRentCents, req.OnTimePercent,
		req.LeftInGoodCondition, req.ReasonForLeaving,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("create rental history record: %w", err)
	}

	if err := uc.rentalHistory.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save rental history record: %w", err)
	}
	return rec.ID, nil
}
