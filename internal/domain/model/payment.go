package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// Payment is a scheduled or settled rent payment.
type Payment struct {
	ID        string
	LeaseID   string
	TenantID  string
	Amount    int64 // cents
	DueDate   time.Time
	PaidDate  *time.Time
	Status    valueobject.PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPayment schedules a validated, pending payment.
func NewPayment(leaseID, tenantID string, amount int64, dueDate time.Time, now time.Time) (Payment, error) {
	if leaseID == "" {
		return Payment{}, errors.New("lease ID is required")
	}
	if tenantID == "" {
		return Payment{}, errors.New("tenant ID is required")
	}
	if amount <= 0 {
		return Payment{}, errors.New("amount must be positive")
	}
	return Payment{
		ID:        uuid.New().String(),
		LeaseID:   leaseID,
		TenantID:  tenantID,
		Amount:    amount,
		DueDate:   dueDate,
		Status:    valueobject.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkPaid settles a pending payment.
func (p Payment) MarkPaid(paidDate time.Time, now time.Time) (Payment, error) {
	if p.Status != valueobject.PaymentPending {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.Status = valueobject.PaymentPaid
	next.PaidDate = &paidDate
	next.UpdatedAt = now
	return next, nil
}

// MarkFailed records a failed collection attempt.
func (p Payment) MarkFailed(now time.Time) (Payment, error) {
	if p.Status != valueobject.PaymentPending {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.Status = valueobject.PaymentFailed
	next.UpdatedAt = now
	return next, nil
}

// OnTime reports whether a paid payment settled by its due date.
func (p Payment) OnTime() bool {
	return p.Status == valueobject.PaymentPaid && p.PaidDate != nil && !p.PaidDate.After(p.DueDate)
}
