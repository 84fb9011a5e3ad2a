package usecase

import (
	"context"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// GetUserUseCase retrieves a user by ID.
type GetUserUseCase struct {
	users port.UserRepository
}

// NewGetUserUseCase wires dependencies.
func NewGetUserUseCase(users port.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{users: users}
}

// Execute fetches the user.
func (uc *GetUserUseCase) Execute(ctx context.Context, userID string) (dto.UserResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return dto.UserResponse{}, err
	}
	return toUserResponse(user), nil
}
