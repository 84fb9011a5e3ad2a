package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// AnalyzeTenantScoreUseCase produces the display-ready analysis of a
// tenant's latest active score.
type AnalyzeTenantScoreUseCase struct {
	scores   port.TenantScoreRepository
	analyzer *service.ScoreAnalyzer
	ensure   *EnsureDefaultScoreUseCase
}

// NewAnalyzeTenantScoreUseCase wires dependencies.
func NewAnalyzeTenantScoreUseCase(
	scores port.TenantScoreRepository,
	analyzer *service.ScoreAnalyzer,
	ensure *EnsureDefaultScoreUseCase,
) *AnalyzeTenantScoreUseCase {
	return &AnalyzeTenantScoreUseCase{scores: scores, analyzer: analyzer, ensure: ensure}
}

// Execute analyzes the latest active score, bootstrapping a default first
// when the tenant has never been scored.
func (uc *AnalyzeTenantScoreUseCase) Execute(ctx context.Context, tenantID string) (service.ScoreAnalysis, error) {
	score, err := uc.latestScore(ctx, tenantID)
	if err != nil {
		return service.ScoreAnalysis{}, err
	}
	return uc.analyzer.Analyze(score), nil
}

func (uc *AnalyzeTenantScoreUseCase) latestScore(ctx context.Context, tenantID string) (model.TenantScore, error) {
	score, err := uc.scores.FindLatestActive(ctx, tenantID)
	switch {
	case err == nil:
		return score, nil
	case !errors.Is(err, valueobject.ErrNotFound):
		return model.TenantScore{}, fmt.Errorf("lookup score: %w", err)
	}

	if _, err := uc.ensure.Execute(ctx, tenantID); err != nil {
		return model.TenantScore{}, err
	}
	return uc.scores.FindLatestActive(ctx, tenantID)
}

// GetScoreImprovementsUseCase lists prioritised improvement recommendations
// for a tenant's latest active score.
type GetScoreImprovementsUseCase struct {
	scores   port.TenantScoreRepository
	analyzer *service.ScoreAnalyzer
	ensure   *EnsureDefaultScoreUseCase
}

// NewGetScoreImprovementsUseCase wires dependencies.
func NewGetScoreImprovementsUseCase(
	scores port.TenantScoreRepository,
	analyzer *service.ScoreAnalyzer,
	ensure *EnsureDefaultScoreUseCase,
) *GetScoreImprovementsUseCase {
	return &GetScoreImprovementsUseCase{scores: scores, analyzer: analyzer, ensure: ensure}
}

// Execute produces the recommendation list.
func (uc *GetScoreImprovementsUseCase) Execute(ctx context.Context, tenantID string) ([]service.Recommendation, error) {
	analysisUC := AnalyzeTenantScoreUseCase{scores: uc.scores, analyzer: uc.analyzer, ensure: uc.ensure}
	score, err := analysisUC.latestScore(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return uc.analyzer.Recommend(score), nil
}
