package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

func TestPaymentLifecycle(t *testing.T) {
	due := fixedNow.AddDate(0, 1, 0)

	t.Run("new payments start pending", func(t *testing.T) {
		p, err := NewPayment("lease-001", "tenant-001", 150000, due, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.PaymentPending, p.Status)
		assert.False(t, p.OnTime())
	})

	t.Run("mark paid settles the payment", func(t *testing.T) {
		p, err := NewPayment("lease-001", "tenant-001", 150000, due, fixedNow)
		require.NoError(t, err)

		paid, err := p.MarkPaid(due.AddDate(0, 0, -1), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.PaymentPaid, paid.Status)
		assert.True(t, paid.OnTime())

		_, err = paid.MarkPaid(due, fixedNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("late settlement is not on time", func(t *testing.T) {
		p, err := NewPayment("lease-001", "tenant-001", 150000, due, fixedNow)
		require.NoError(t, err)

		paid, err := p.MarkPaid(due.AddDate(0, 0, 3), fixedNow)
		require.NoError(t, err)
		assert.False(t, paid.OnTime())
	})

	t.Run("settlement exactly on the due date is on time", func(t *testing.T) {
		p, err := NewPayment("lease-001", "tenant-001", 150000, due, fixedNow)
		require.NoError(t, err)

		paid, err := p.MarkPaid(due, fixedNow)
		require.NoError(t, err)
		assert.True(t, paid.OnTime())
	})

	t.Run("mark failed", func(t *testing.T) {
		p, err := NewPayment("lease-001", "tenant-001", 150000, due, fixedNow)
		require.NoError(t, err)

		failed, err := p.MarkFailed(fixedNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.PaymentFailed, failed.Status)

		_, err = failed.MarkPaid(due, fixedNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewPayment("", "tenant-001", 150000, due, fixedNow)
		assert.Error(t, err)

		_, err = NewPayment("lease-001", "tenant-001", 0, due, fixedNow)
		assert.Error(t, err)
	})
}

func TestEvidenceValidation(t *testing.T) {
	t.Run("credit check score must be on the bureau scale", func(t *testing.T) {
		_, err := NewCreditCheck("tenant-001", "equifax", 299, fixedNow, fixedNow)
		assert.Error(t, err)

		check, err := NewCreditCheck("tenant-001", "equifax", 720, fixedNow, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, valueobject.CreditCheckCompleted, check.Status)
	})

	t.Run("employment tenure", func(t *testing.T) {
		rec, err := NewEmploymentRecord("tenant-001", "Acme", "engineer", fixedNow.AddDate(-2, 0, 0), nil, 450000, fixedNow)
		require.NoError(t, err)
		assert.True(t, rec.Current())
		assert.Equal(t, 24, rec.TenureMonths(fixedNow))
	})

	t.Run("rental history tenancy length", func(t *testing.T) {
		rec, err := NewRentalHistoryRecord(
			"tenant-001", "Prior Landlord", "12 Elm St",
			fixedNow.AddDate(-1, 0, 0), fixedNow,
			140000, 95, true, "relocated", fixedNow,
		)
		require.NoError(t, err)
		assert.Equal(t, 12, rec.TenancyMonths())

		_, err = NewRentalHistoryRecord(
			"tenant-001", "Prior Landlord", "",
			fixedNow, fixedNow.AddDate(-1, 0, 0),
			140000, 95, true, "", fixedNow,
		)
		assert.Error(t, err)
	})

	t.Run("reference rating bounds", func(t *testing.T) {
		_, err := NewReference("tenant-001", "Jordan Ellis", valueobject.ReferenceLandlord, 6, "", fixedNow)
		assert.Error(t, err)

		_, err = NewReference("tenant-001", "Jordan Ellis", valueobject.ReferenceLandlord, 0, "", fixedNow)
		assert.Error(t, err)
	})
}
