package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// SettlePaymentUseCase settles a pending payment as paid or failed and
// publishes the settlement event.
type SettlePaymentUseCase struct {
	payments  port.PaymentRepository
	publisher port.EventPublisher
}

// NewSettlePaymentUseCase wires dependencies.
func NewSettlePaymentUseCase(payments port.PaymentRepository, publisher port.EventPublisher) *SettlePaymentUseCase {
	return &SettlePaymentUseCase{payments: payments, publisher: publisher}
}

// Execute applies the settlement. A paid settlement without an explicit paid
// date uses the current time.
func (uc *SettlePaymentUseCase) Execute(ctx context.Context, req dto.SettlePaymentRequest) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	payment, err := uc.payments.FindByID(ctx, req.PaymentID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("payment %s: %w", req.PaymentID, err)
	}

	if req.Paid {
		paidDate := now
		if req.PaidDate != nil {
			paidDate = *req.PaidDate
		}
		payment, err = payment.MarkPaid(paidDate, now)
	} else {
		payment, err = payment.MarkFailed(now)
	}
	if err != nil {
		return dto.PaymentResponse{}, err
	}

	if err := uc.payments.Save(ctx, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	recorded := event.NewPaymentRecorded(
		payment.ID, payment.TenantID, payment.LeaseID,
		payment.Amount, string(payment.Status), payment.DueDate, payment.PaidDate,
	)
	if err := uc.publisher.Publish(ctx, recorded); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toPaymentResponse(payment), nil
}
