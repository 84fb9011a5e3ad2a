package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/application/usecase"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func pendingPayment(t *testing.T) model.Payment {
	t.Helper()
	p, err := model.NewPayment("lease-001", "tenant-001", 150000, time.Now().UTC().AddDate(0, 0, 7), time.Now().UTC())
	require.NoError(t, err)
	return p
}

func TestSettlePayment_Execute(t *testing.T) {
	t.Run("marks paid and publishes the settlement", func(t *testing.T) {
		payment := pendingPayment(t)
		payments := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) {
				return payment, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSettlePaymentUseCase(payments, publisher)

		resp, err := uc.Execute(context.Background(), dto.SettlePaymentRequest{
			PaymentID: payment.ID,
			Paid:      true,
		})

		require.NoError(t, err)
		assert.Equal(t, "PAID", resp.Status)
		require.NotNil(t, resp.PaidDate)

		require.Len(t, payments.savedPayments, 1)
		require.Len(t, publisher.publishedEvents, 1)
		recorded, ok := publisher.publishedEvents[0].(event.PaymentRecorded)
		require.True(t, ok)
		assert.Equal(t, "PAID", recorded.Status)
	})

	t.Run("marks failed", func(t *testing.T) {
		payment := pendingPayment(t)
		payments := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) {
				return payment, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewSettlePaymentUseCase(payments, publisher)

		resp, err := uc.Execute(context.Background(), dto.SettlePaymentRequest{
			PaymentID: payment.ID,
			Paid:      false,
		})

		require.NoError(t, err)
		assert.Equal(t, "FAILED", resp.Status)
		assert.Nil(t, resp.PaidDate)
	})

	t.Run("settling a settled payment fails", func(t *testing.T) {
		payment := pendingPayment(t)
		settled, err := payment.MarkFailed(time.Now().UTC())
		require.NoError(t, err)

		payments := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) {
				return settled, nil
			},
		}
		uc := usecase.NewSettlePaymentUseCase(payments, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), dto.SettlePaymentRequest{PaymentID: payment.ID, Paid: true})

		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}
