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

// RegisterUserUseCase registers a platform user keyed by the external
// identity provider. Registration is idempotent on the external ID.
type RegisterUserUseCase struct {
	users port.UserRepository
}

// NewRegisterUserUseCase wires dependencies.
func NewRegisterUserUseCase(users port.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users}
}

// Execute creates the user, or returns the existing one for the same
// external identity.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, error) {
	existing, err := uc.users.FindByExternalID(ctx, req.ExternalIdentityID)
	switch {
	case err == nil:
		return toUserResponse(existing), nil
	case !errors.Is(err, valueobject.ErrNotFound):
		return dto.UserResponse{}, fmt.Errorf("lookup user: %w", err)
	}

	role, err := valueobject.NewUserRole(req.Role)
	if err != nil {
		return dto.UserResponse{}, err
	}

	user, err := model.NewUser(req.ExternalIdentityID, role, req.Email, req.FullName, time.Now().UTC())
	if err != nil {
		return dto.UserResponse{}, fmt.Errorf("create user: %w", err)
	}
	if req.MonthlyIncomeCents > 0 {
		user.MonthlyIncome = req.MonthlyIncomeCents
	}
	if req.CreditScore != nil {
		if *req.CreditScore < 300 || *req.CreditScore > 900 {
			return dto.UserResponse{}, errors.New("credit score must be on the 300-900 scale")
		}
		user.CreditScore = req.CreditScore
	}

	if err := uc.users.Save(ctx, user); err != nil {
		return dto.UserResponse{}, fmt.Errorf("save user: %w", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:                 u.ID,
		ExternalIdentityID: u.ExternalIdentityID,
		Role:               string(u.Role),
		Email:              u.Email,
		FullName:           u.FullName,
		VerificationStatus: string(u.VerificationStatus),
		MonthlyIncomeCents: u.MonthlyIncome,
		Active:             u.Active,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
