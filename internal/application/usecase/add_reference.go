package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// AddReferenceUseCase records one reference vouching for a tenant.
type AddReferenceUseCase struct {
	references port.ReferenceRepository
	users      port.UserRepository
}

// NewAddReferenceUseCase wires dependencies.
func NewAddReferenceUseCase(references port.ReferenceRepository, users port.UserRepository) *AddReferenceUseCase {
	return &AddReferenceUseCase{references: references, users: users}
}

// Execute validates the tenant and relationship, then persists the reference.
func (uc *AddReferenceUseCase) Execute(ctx context.Context, req dto.AddReferenceRequest) (string, error) {
	if _, err := uc.users.FindByID(ctx, req.TenantID); err != nil {
		return "", fmt.Errorf("tenant %s: %w", req.TenantID, err)
	}

	relationship, err := valueobject.NewReferenceRelationship(req.Relationship)
	if err != nil {
		return "", err
	}

	ref, err := model.NewReference(
		req.TenantID, req.ReferrerName, relationship, req.Rating, req.Comments,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("create reference: %w", err)
	}

	if err := uc.references.Save(ctx, ref); err != nil {
		return "", fmt.Errorf("save reference: %w", err)
	}
	return ref.ID, nil
}
