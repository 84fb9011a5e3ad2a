package usecase

import (
	"context"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// GetPropertyUseCase retrieves a listing by ID.
type GetPropertyUseCase struct {
	properties port.PropertyRepository
}

// NewGetPropertyUseCase wires dependencies.
func NewGetPropertyUseCase(properties port.PropertyRepository) *GetPropertyUseCase {
	return &GetPropertyUseCase{properties: properties}
}

// Execute fetches the listing.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, propertyID string) (dto.PropertyResponse, error) {
	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		return dto.PropertyResponse{}, err
	}
	return toPropertyResponse(property), nil
}
