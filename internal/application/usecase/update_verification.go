package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// UpdateVerificationUseCase records the identity provider's verification
// outcome on a user profile.
type UpdateVerificationUseCase struct {
	users port.UserRepository
}

// NewUpdateVerificationUseCase wires dependencies.
func NewUpdateVerificationUseCase(users port.UserRepository) *UpdateVerificationUseCase {
	return &UpdateVerificationUseCase{users: users}
}

// Execute applies the new verification status and optional match confidence.
func (uc *UpdateVerificationUseCase) Execute(ctx context.Context, req dto.UpdateVerificationRequest) (dto.UserResponse, error) {
	status, err := valueobject.NewVerificationStatus(req.Status)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user, err := uc.users.FindByID(ctx, req.UserID)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user.VerificationStatus = status
	if req.IDMatchConfidence != nil {
		conf := decimal.NewFromFloat(*req.IDMatchConfidence)
		if conf.IsNegative() || conf.GreaterThan(decimal.NewFromInt(1)) {
			return dto.UserResponse{}, errors.New("id match confidence must be in [0,1]")
		}
		user.IDMatchConfidence = &conf
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Save(ctx, user); err != nil {
		return dto.UserResponse{}, fmt.Errorf("save user: %w", err)
	}
	return toUserResponse(user), nil
}
