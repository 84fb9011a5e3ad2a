package usecase

import (
	"context"
	"fmt"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/port"
)

// GetTenantScoreUseCase returns a tenant's latest active score, bootstrapping
// the neutral default for tenants that have never been scored.
type GetTenantScoreUseCase struct {
	ensure *EnsureDefaultScoreUseCase
}

// NewGetTenantScoreUseCase wires dependencies.
func NewGetTenantScoreUseCase(ensure *EnsureDefaultScoreUseCase) *GetTenantScoreUseCase {
	return &GetTenantScoreUseCase{ensure: ensure}
}

// Execute fetches or bootstraps the latest active score.
func (uc *GetTenantScoreUseCase) Execute(ctx context.Context, tenantID string) (dto.TenantScoreResponse, error) {
	return uc.ensure.Execute(ctx, tenantID)
}

// GetScoreHistoryUseCase lists every score ever computed for a tenant,
// newest first, including superseded ones.
type GetScoreHistoryUseCase struct {
	scores port.TenantScoreRepository
}

// NewGetScoreHistoryUseCase wires dependencies.
func NewGetScoreHistoryUseCase(scores port.TenantScoreRepository) *GetScoreHistoryUseCase {
	return &GetScoreHistoryUseCase{scores: scores}
}

// Execute fetches the score history.
func (uc *GetScoreHistoryUseCase) Execute(ctx context.Context, tenantID string) ([]dto.TenantScoreResponse, error) {
	history, err := uc.scores.FindHistory(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	out := make([]dto.TenantScoreResponse, 0, len(history))
	for _, s := range history {
		out = append(out, toTenantScoreResponse(s))
	}
	return out, nil
}

// DeactivateScoreUseCase retires a score record by ID.
type DeactivateScoreUseCase struct {
	scores port.TenantScoreRepository
}

// NewDeactivateScoreUseCase wires dependencies.
func NewDeactivateScoreUseCase(scores port.TenantScoreRepository) *DeactivateScoreUseCase {
	return &DeactivateScoreUseCase{scores: scores}
}

// Execute deactivates the score.
func (uc *DeactivateScoreUseCase) Execute(ctx context.Context, scoreID string) error {
	if _, err := uc.scores.FindByID(ctx, scoreID); err != nil {
		return fmt.Errorf("score %s: %w", scoreID, err)
	}
	return uc.scores.Deactivate(ctx, scoreID)
}
