package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// defaultLeaseTermMonths applies when an approval does not specify lease dates.
const defaultLeaseTermMonths = 12

// DecideApplicationUseCase records a landlord's approval or rejection. An
// approval creates the lease and takes the property off the market.
type DecideApplicationUseCase struct {
	applications port.ApplicationRepository
	properties   port.PropertyRepository
	leases       port.LeaseRepository
	publisher    port.EventPublisher
}

// NewDecideApplicationUseCase wires dependencies.
func NewDecideApplicationUseCase(
	applications port.ApplicationRepository,
	properties port.PropertyRepository,
	leases port.LeaseRepository,
	publisher port.EventPublisher,
) *DecideApplicationUseCase {
	return &DecideApplicationUseCase{
		applications: applications,
		properties:   properties,
		leases:       leases,
		publisher:    publisher,
	}
}

// Execute applies the decision to a pending application.
func (uc *DecideApplicationUseCase) Execute(ctx context.Context, req dto.DecideApplicationRequest) (dto.DecisionResponse, error) {
	now := time.Now().UTC()

	app, err := uc.applications.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("application %s: %w", req.ApplicationID, err)
	}

	if !req.Approve {
		app, err = app.Reject(req.Reason, now)
		if err != nil {
			return dto.DecisionResponse{}, err
		}
		if err := uc.applications.Save(ctx, app); err != nil {
			return dto.DecisionResponse{}, fmt.Errorf("save application: %w", err)
		}
		if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
			return dto.DecisionResponse{}, fmt.Errorf("publish events: %w", err)
		}
		return dto.DecisionResponse{Application: toApplicationResponse(app)}, nil
	}

	property, err := uc.properties.FindByID(ctx, app.PropertyID())
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("property %s: %w", app.PropertyID(), err)
	}

	app, err = app.Approve(req.Reason, now)
	if err != nil {
		return dto.DecisionResponse{}, err
	}

	start, end := leaseDates(req, app, now)
	lease, err := model.NewLease(app.TenantID(), app.PropertyID(), start, end, property.MonthlyRent, now)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("create lease: %w", err)
	}

	property.Status = valueobject.PropertyRented
	property.UpdatedAt = now

	if err := uc.applications.Save(ctx, app); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.leases.Save(ctx, lease); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("save lease: %w", err)
	}
	if err := uc.properties.Save(ctx, property); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("save property: %w", err)
	}

	events := append(app.DomainEvents(), event.NewLeaseCreated(
		lease.ID, lease.TenantID, lease.PropertyID, lease.MonthlyRent, lease.StartDate, lease.EndDate,
	))
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("publish events: %w", err)
	}

	leaseResp := toLeaseResponse(lease)
	return dto.DecisionResponse{
		Application: toApplicationResponse(app),
		Lease:       &leaseResp,
	}, nil
}

// leaseDates derives the lease term: explicit dates win, then the tenant's
// requested move-in date, then today, always for the default term.
func leaseDates(req dto.DecideApplicationRequest, app model.Application, now time.Time) (time.Time, time.Time) {
	if req.LeaseStart != nil && req.LeaseEnd != nil {
		return *req.LeaseStart, *req.LeaseEnd
	}
	start := now
	if app.MoveInDate() != nil && app.MoveInDate().After(now) {
		start = *app.MoveInDate()
	}
	return start, start.AddDate(0, defaultLeaseTermMonths, 0)
}

func toLeaseResponse(l model.Lease) dto.LeaseResponse {
	return dto.LeaseResponse{
		ID:               l.ID,
		TenantID:         l.TenantID,
		PropertyID:       l.PropertyID,
		StartDate:        l.StartDate,
		EndDate:          l.EndDate,
		MonthlyRentCents: l.MonthlyRent,
		Status:           string(l.Status),
	}
}
