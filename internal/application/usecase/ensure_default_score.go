package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leaselab/screening-service/internal/application/dto"
	"github.com/leaselab/screening-service/internal/domain/event"
	"github.com/leaselab/screening-service/internal/domain/model"
	"github.com/leaselab/screening-service/internal/domain/port"
	"github.com/leaselab/screening-service/internal/domain/service"
	"github.com/leaselab/screening-service/internal/domain/valueobject"
)

// EnsureDefaultScoreUseCase bootstraps a neutral score for tenants that have
// never been scored, so reads always find an active record. Idempotent: an
// existing score, whatever its value, is returned untouched.
type EnsureDefaultScoreUseCase struct {
	scores    port.TenantScoreRepository
	users     port.UserRepository
	publisher port.EventPublisher
}

// NewEnsureDefaultScoreUseCase wires dependencies.
func NewEnsureDefaultScoreUseCase(scores port.TenantScoreRepository, users port.UserRepository, publisher port.EventPublisher) *EnsureDefaultScoreUseCase {
	return &EnsureDefaultScoreUseCase{scores: scores, users: users, publisher: publisher}
}

// Execute returns the latest active score, inserting the neutral default when
// none exists.
func (uc *EnsureDefaultScoreUseCase) Execute(ctx context.Context, tenantID string) (dto.TenantScoreResponse, error) {
	existing, err := uc.scores.FindLatestActive(ctx, tenantID)
	switch {
	case err == nil:
		return toTenantScoreResponse(existing), nil
	case !errors.Is(err, valueobject.ErrNotFound):
		return dto.TenantScoreResponse{}, fmt.Errorf("lookup score: %w", err)
	}

	if _, err := uc.users.FindByID(ctx, tenantID); err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("tenant %s: %w", tenantID, err)
	}

	score, err := model.NewTenantScore(
		tenantID, service.NeutralScore, defaultComponents(),
		valueobject.ScoringMethodComprehensive, 0, defaultBreakdown(),
		time.Now().UTC(),
	)
	if err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("create default score: %w", err)
	}

	if err := uc.scores.Save(ctx, score); err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("save default score: %w", err)
	}

	// weightsApplied 0 marks the event as a bootstrap default downstream.
	computed := event.NewTenantScoreComputed(
		score.ID(), score.TenantID(), score.OverallScore(),
		score.Method().String(), score.WeightsApplied(),
	)
	if err := uc.publisher.Publish(ctx, computed); err != nil {
		return dto.TenantScoreResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toTenantScoreResponse(score), nil
}

// defaultComponents marks every component as not yet evaluated.
func defaultComponents() model.ComponentScores {
	components := make(model.ComponentScores, len(valueobject.AllComponents()))
	for _, component := range valueobject.AllComponents() {
		components[component] = nil
	}
	return components
}

func defaultBreakdown() model.ScoreBreakdown {
	weights := service.WeightsFor(valueobject.ScoringMethodComprehensive)
	entries := make([]model.ComponentBreakdown, 0, len(valueobject.AllComponents()))
	for _, component := range valueobject.AllComponents() {
		entries = append(entries, model.ComponentBreakdown{
			Component: component,
			Outcome:   valueobject.OutcomeUnavailable,
			Weight:    weights.Weight(component),
			Reason:    "not yet scored",
		})
	}
	return model.ScoreBreakdown{
		Method:         valueobject.ScoringMethodComprehensive.String(),
		WeightsApplied: 0,
		Components:     entries,
	}
}
