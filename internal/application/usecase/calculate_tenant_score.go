package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// CalculateTenantScoreUseCase runs the scoring engine, persists the result
// as the tenant's new active score, and publishes the scoring event.
type CalculateTenantScoreUseCase struct {
	engine    *service.ScoringEngine
	scores    port.TenantScoreRepository
	publisher port.EventPublisher
}

// NewCalculateTenantScoreUseCase wires dependencies.
func NewCalculateTenantScoreUseCase(
	engine *service.ScoringEngine,
	scores port.TenantScoreRepository,
	publisher port.EventPublisher,
) *CalculateTenantScoreUseCase {
	return &CalculateTenantScoreUseCase{engine: engine, scores: scores, publisher: publisher}
}

// Execute computes and persists a score. The previous active score is
// superseded in the same transaction as the insert.
func (uc *CalculateTenantScoreUseCase) Execute(ctx context.Context, req dto.CalculateScoreRequest) (dto.TenantScoreResponse, error) {
	outcome, err := uc.engine.CalculateTenantScore(ctx, service.ScoreInput{
		TenantID:      req.TenantID,
		PropertyID:    req.PropertyID,
		ApplicationID: req.ApplicationID,
		MonthlyRent:   req.MonthlyRentCents,
		Method:        valueobject.ParseScoringMethod(req.ScoringMethod),
	})
	if err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("calculate score: %w", err)
	}

	score, err := model.NewTenantScore(
		outcome.TenantID, outcome.OverallScore, outcome.Components,
		outcome.Method, outcome.WeightsApplied, outcome.Breakdown,
		time.Now().UTC(),
	)
	if err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("create score record: %w", err)
	}

	if err := uc.scores.SaveSuperseding(ctx, score); err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("save score: %w", err)
	}

	computed := event.NewTenantScoreComputed(
		score.ID(), score.TenantID(), score.OverallScore(),
		score.Method().String(), score.WeightsApplied(),
	)
	if err := uc.publisher.Publish(ctx, computed); err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toTenantScoreResponse(score), nil
}

func toTenantScoreResponse(s model.TenantScore) dto.TenantScoreResponse {
	breakdown := s.Breakdown()
	components := make([]dto.ComponentScoreResponse, 0, len(breakdown.Components))
	for _, entry := range breakdown.Components {
		components = append(components, dto.ComponentScoreResponse{
			Component: string(entry.Component),
			Outcome:   string(entry.Outcome),
			Score:     entry.Score,
			Weight:    entry.Weight,
			Reason:    entry.Reason,
		})
	}

	return dto.TenantScoreResponse{
		ID:             s.ID(),
		TenantID:       s.TenantID(),
		OverallScore:   s.OverallScore(),
		DisplayScore:   service.DisplayScore(s.OverallScore()),
		ScoringMethod:  s.Method().String(),
		WeightsApplied: s.WeightsApplied(),
		Defaulted:      s.WeightsApplied() == 0,
		Active:         s.Active(),
		Components:     components,
		CreatedAt:      s.CreatedAt(),
	}
}
