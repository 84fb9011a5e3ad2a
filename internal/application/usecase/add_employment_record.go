package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// AddEmploymentRecordUseCase adds one job to a tenant's employment history.
type AddEmploymentRecordUseCase struct {
	employment port.EmploymentRepository
	users      port.UserRepository
}

// NewAddEmploymentRecordUseCase wires dependencies.
func NewAddEmploymentRecordUseCase(employment port.EmploymentRepository, users port.UserRepository) *AddEmploymentRecordUseCase {
	return &AddEmploymentRecordUseCase{employment: employment, users: users}
}

// Execute validates the tenant and persists the record.
func (uc *AddEmploymentRecordUseCase) Execute(ctx context.Context, req dto.AddEmploymentRecordRequest) (string, error) {
	if _, err := uc.users.FindByID(ctx, req.TenantID); err != nil {
		return "", fmt.Errorf("tenant %s: %w", req.TenantID, err)
	}

	rec, err := model.NewEmploymentRecord(
		req.TenantID, req.Employer, req.Position,
		req.StartDate, req.EndDate, req.MonthlyIncomeCents,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("create employment record: %w", err)
	}

	if err := uc.employment.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save employment record: %w", err)
	}
	return rec.ID, nil
}
