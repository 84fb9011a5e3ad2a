package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newPendingApplication(t *testing.T) Application {
	t.Helper()
	app, err := NewApplication("tenant-001", "prop-001", 450000, nil, "two adults, no pets", 2, fixedNow)
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	t.Run("starts pending and emits a submitted event", func(t *testing.T) {
		app := newPendingApplication(t)

		assert.NotEmpty(t, app.ID())
		assert.True(t, app.Status().Equal(valueobject.ApplicationStatusPending))

		events := app.DomainEvents()
		require.Len(t, events, 1)
		submitted, ok := events[0].(event.ApplicationSubmitted)
		require.True(t, ok)
		assert.Equal(t, app.ID(), submitted.AggregateID())
		assert.Equal(t, "tenant-001", submitted.TenantID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := NewApplication("", "prop-001", 0, nil, "", 0, fixedNow)
		assert.Error(t, err)

		_, err = NewApplication("tenant-001", "", 0, nil, "", 0, fixedNow)
		assert.Error(t, err)

		_, err = NewApplication("tenant-001", "prop-001", -1, nil, "", 0, fixedNow)
		assert.Error(t, err)
	})
}

func TestApplicationApprove(t *testing.T) {
	t.Run("pending application can be approved", func(t *testing.T) {
		app := newPendingApplication(t)

		later := fixedNow.Add(time.Hour)
		approved, err := app.Approve("meets all criteria", later)

		require.NoError(t, err)
		assert.True(t, approved.Status().Equal(valueobject.ApplicationStatusApproved))
		assert.Equal(t, "meets all criteria", approved.DecisionReason())
		assert.Equal(t, later, approved.UpdatedAt())

		// The original is untouched.
		assert.True(t, app.Status().Equal(valueobject.ApplicationStatusPending))

		events := approved.DomainEvents()
		require.Len(t, events, 2)
		decided, ok := events[1].(event.ApplicationDecided)
		require.True(t, ok)
		assert.Equal(t, "APPROVED", decided.Status)
	})

	t.Run("approving twice is rejected", func(t *testing.T) {
		app := newPendingApplication(t)
		approved, err := app.Approve("ok", fixedNow)
		require.NoError(t, err)

		_, err = approved.Approve("again", fixedNow)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestApplicationReject(t *testing.T) {
	app := newPendingApplication(t)

	rejected, err := app.Reject("insufficient income", fixedNow)

	require.NoError(t, err)
	assert.True(t, rejected.Status().Equal(valueobject.ApplicationStatusRejected))

	_, err = rejected.Approve("too late", fixedNow)
	assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
}

func TestApplicationClearEvents(t *testing.T) {
	app := newPendingApplication(t)
	require.NotEmpty(t, app.DomainEvents())

	cleared := app.ClearEvents()

	assert.Empty(t, cleared.DomainEvents())
	assert.NotEmpty(t, app.DomainEvents())
}
