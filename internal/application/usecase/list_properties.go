package usecase

import (
	"context"
	"fmt"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// ListPropertiesUseCase lists listings, optionally filtered by status or
// landlord.
type ListPropertiesUseCase struct {
	properties port.PropertyRepository
}

// NewListPropertiesUseCase wires dependencies.
func NewListPropertiesUseCase(properties port.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{properties: properties}
}

// ListPropertiesFilter narrows the listing query. Zero values mean no filter;
// an empty filter lists available properties.
type ListPropertiesFilter struct {
	Status     string
	LandlordID string
}

// Execute runs the filtered listing query.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, filter ListPropertiesFilter) ([]dto.PropertyResponse, error) {
	if filter.LandlordID != "" {
		properties, err := uc.properties.FindByLandlordID(ctx, filter.LandlordID)
		if err != nil {
			return nil, fmt.Errorf("list by landlord: %w", err)
		}
		return toPropertyResponses(properties), nil
	}

	status := filter.Status
	if status == "" {
		status = string(valueobject.PropertyAvailable)
	}
	if _, err := valueobject.NewPropertyStatus(status); err != nil {
		return nil, err
	}
	properties, err := uc.properties.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list by status: %w", err)
	}
	return toPropertyResponses(properties), nil
}

func toPropertyResponses(properties []model.Property) []dto.PropertyResponse {
	out := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}
