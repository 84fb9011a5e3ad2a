package usecase

import (
	"context"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// GetApplicationUseCase retrieves an application by ID.
type GetApplicationUseCase struct {
	applications port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(applications port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{applications: applications}
}

// Execute fetches the application.
func (uc *GetApplicationUseCase) Execute(ctx context.Context, applicationID string) (dto.ApplicationResponse, error) {
	app, err := uc.applications.FindByID(ctx, applicationID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	return toApplicationResponse(app), nil
}
