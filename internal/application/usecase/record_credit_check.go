package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// RecordCreditCheckUseCase stores a completed bureau pull supplied by the
// caller, for deployments where pulls happen out of band.
type RecordCreditCheckUseCase struct {
	creditChecks port.CreditCheckRepository
	users        port.UserRepository
}

// NewRecordCreditCheckUseCase wires dependencies.
func NewRecordCreditCheckUseCase(creditChecks port.CreditCheckRepository, users port.UserRepository) *RecordCreditCheckUseCase {
	return &RecordCreditCheckUseCase{creditChecks: creditChecks, users: users}
}

// Execute validates the tenant and persists the check.
func (uc *RecordCreditCheckUseCase) Execute(ctx context.Context, req dto.RecordCreditCheckRequest) (dto.CreditCheckResponse, error) {
	if _, err := uc.users.FindByID(ctx, req.TenantID); err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("tenant %s: %w", req.TenantID, err)
	}

	reportDate := req.ReportDate
	if reportDate.IsZero() {
		reportDate = time.Now().UTC()
	}
	check, err := model.NewCreditCheck(req.TenantID, req.Bureau, req.Score, reportDate, time.Now().UTC())
	if err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("create credit check: %w", err)
	}

	if err := uc.creditChecks.Save(ctx, check); err != nil {
		return dto.CreditCheckResponse{}, fmt.Errorf("save credit check: %w", err)
	}
	return toCreditCheckResponse(check), nil
}

func toCreditCheckResponse(c model.CreditCheck) dto.CreditCheckResponse {
	return dto.CreditCheckResponse{
		ID:         c.ID,
		TenantID:   c.TenantID,
		Bureau:     c.Bureau,
		Score:      c.Score,
		Status:     string(c.Status),
		ReportDate: c.ReportDate,
	}
}
