package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// SubmitApplicationUseCase records a tenant's application for an available
// property and publishes the submission event.
type SubmitApplicationUseCase struct {
	applications port.ApplicationRepository
	properties   port.PropertyRepository
	users        port.UserRepository
	publisher    port.EventPublisher
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	applications port.ApplicationRepository,
	properties port.PropertyRepository,
	users port.UserRepository,
	publisher port.EventPublisher,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		applications: applications,
		properties:   properties,
		users:        users,
		publisher:    publisher,
	}
}

// Execute validates tenant and property, creates the application, persists
// it, and publishes its events.
func (uc *SubmitApplicationUseCase) Execute(ctx context.Context, req dto.SubmitApplicationRequest) (dto.ApplicationResponse, error) {
	if _, err := uc.users.FindByID(ctx, req.TenantID); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("tenant %s: %w", req.TenantID, err)
	}

	property, err := uc.properties.FindByID(ctx, req.PropertyID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("property %s: %w", req.PropertyID, err)
	}
	if property.Status != valueobject.PropertyAvailable {
		return dto.ApplicationResponse{}, errors.New("property is not available")
	}

	app, err := model.NewApplication(
		req.TenantID, req.PropertyID,
		req.MonthlyIncomeCents, req.MoveInDate, req.Notes, req.ReferenceCount,
		time.Now().UTC(),
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	if err := uc.applications.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toApplicationResponse(app), nil
}

func toApplicationResponse(app model.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:                 app.ID(),
		TenantID:           app.TenantID(),
		PropertyID:         app.PropertyID(),
		MonthlyIncomeCents: app.MonthlyIncome(),
		MoveInDate:         app.MoveInDate(),
		Notes:              app.Notes(),
		ReferenceCount:     app.ReferenceCount(),
		Status:             app.Status().String(),
		DecisionReason:     app.DecisionReason(),
		CreatedAt:          app.CreatedAt(),
		UpdatedAt:          app.UpdatedAt(),
	}
}
