package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// CreatePropertyUseCase creates a landlord listing.
type CreatePropertyUseCase struct {
	properties port.PropertyRepository
	users      port.UserRepository
}

// NewCreatePropertyUseCase wires dependencies.
func NewCreatePropertyUseCase(properties port.PropertyRepository, users port.UserRepository) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{properties: properties, users: users}
}

// Execute validates the landlord and persists the listing.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, req dto.CreatePropertyRequest) (dto.PropertyResponse, error) {
	if _, err := uc.users.FindByID(ctx, req.LandlordID); err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("landlord %s: %w", req.LandlordID, err)
	}

	property, err := model.NewProperty(
		req.LandlordID, req.Title, req.Address,
		req.MonthlyRentCents, req.Bedrooms, req.Bathrooms,
		time.Now().UTC(),
	)
	if err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("create property: %w", err)
	}

	if err := uc.properties.Save(ctx, property); err != nil {
		return dto.PropertyResponse{}, fmt.Errorf("save property: %w", err)
	}
	return toPropertyResponse(property), nil
}

func toPropertyResponse(p model.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:               p.ID,
		LandlordID:       p.LandlordID,
		Title:            p.Title,
		Address:          p.Address,
		MonthlyRentCents: p.MonthlyRent,
		Bedrooms:         p.Bedrooms,
		Bathrooms:        p.Bathrooms,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
