package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// SchedulePaymentUseCase schedules a pending rent payment against a lease.
type SchedulePaymentUseCase struct {
	payments port.PaymentRepository
	leases   port.LeaseRepository
}

// NewSchedulePaymentUseCase wires dependencies.
func NewSchedulePaymentUseCase(payments port.PaymentRepository, leases port.LeaseRepository) *SchedulePaymentUseCase {
	return &SchedulePaymentUseCase{payments: payments, leases: leases}
}

// Execute validates the lease and persists the pending payment.
func (uc *SchedulePaymentUseCase) Execute(ctx context.Context, req dto.SchedulePaymentRequest) (dto.PaymentResponse, error) {
	lease, err := uc.leases.FindByID(ctx, req.LeaseID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("lease %s: %w", req.LeaseID, err)
	}
	if lease.TenantID != req.TenantID {
		return dto.PaymentResponse{}, fmt.Errorf("lease %s does not belong to tenant %s", req.LeaseID, req.TenantID)
	}

	payment, err := model.NewPayment(req.LeaseID, req.TenantID, req.AmountCents, req.DueDate, time.Now().UTC())
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("create payment: %w", err)
	}

	if err := uc.payments.Save(ctx, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}
	return toPaymentResponse(payment), nil
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:          p.ID,
		LeaseID:     p.LeaseID,
		TenantID:    p.TenantID,
		AmountCents: p.Amount,
		DueDate:     p.DueDate,
		PaidDate:    p.PaidDate,
		Status:      string(p.Status),
	}
}
